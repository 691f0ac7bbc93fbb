package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/Kariqs/wagas-api/logger"
	"github.com/Kariqs/wagas-api/middlewares"
	"github.com/Kariqs/wagas-api/models"
	"github.com/Kariqs/wagas-api/sessions"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Log = zap.NewNop()
}

// loadSession stands in for RequireAuth: it loads the session fresh
// from the store on every request.
func loadSession(store sessions.Store, sessionID string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		session, err := store.Get(ctx.Request.Context(), sessionID)
		if err != nil {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		ctx.Set(middlewares.SessionKey, session)
	}
}

func setupCartRouter(t *testing.T) (*gin.Engine, sessions.Store, *sessions.Session) {
	t.Helper()

	store := sessions.NewMemoryStore()
	user := models.User{Username: "alice", Role: models.RoleUser}
	user.ID = 7
	session := sessions.New(user)
	require.NoError(t, store.Save(context.Background(), session))

	cart := NewCartController(store)
	router := gin.New()
	authed := router.Group("/", loadSession(store, session.ID))
	authed.GET("/cart", cart.GetCart)
	authed.POST("/add_to_cart", cart.AddToCart)
	authed.GET("/remove_from_cart/:id", cart.RemoveFromCart)
	authed.GET("/clear_cart", cart.ClearCart)

	return router, store, session
}

func postForm(router *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	router.ServeHTTP(recorder, request)
	return recorder
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, path, nil))
	return recorder
}

func TestAddToCart(t *testing.T) {
	router, store, session := setupCartRouter(t)

	recorder := postForm(router, "/add_to_cart", url.Values{"name": {"Burger"}, "price": {"120"}})
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Burger added to cart!")

	saved, err := store.Get(context.Background(), session.ID)
	require.NoError(t, err)
	require.Len(t, saved.Cart.Items, 1)
	assert.Equal(t, sessions.CartItem{ID: 1, Name: "Burger", Price: 120}, saved.Cart.Items[0])
}

func TestAddToCartUnparseablePriceDefaultsToZero(t *testing.T) {
	router, store, session := setupCartRouter(t)

	recorder := postForm(router, "/add_to_cart", url.Values{"name": {"Mystery Meal"}, "price": {"cheap"}})
	assert.Equal(t, http.StatusOK, recorder.Code)

	saved, err := store.Get(context.Background(), session.ID)
	require.NoError(t, err)
	require.Len(t, saved.Cart.Items, 1)
	assert.Zero(t, saved.Cart.Items[0].Price)
}

func TestAddThenRemoveLeavesEmptyCart(t *testing.T) {
	router, store, session := setupCartRouter(t)

	recorder := postForm(router, "/add_to_cart", url.Values{"name": {"Burger"}, "price": {"120"}})
	require.Equal(t, http.StatusOK, recorder.Code)

	var added struct {
		ID int `json:"id"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &added))

	recorder = get(router, fmt.Sprintf("/remove_from_cart/%d", added.ID))
	assert.Equal(t, http.StatusOK, recorder.Code)

	saved, err := store.Get(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Empty(t, saved.Cart.Items)
}

func TestItemIDsSurviveRemoval(t *testing.T) {
	router, store, session := setupCartRouter(t)

	postForm(router, "/add_to_cart", url.Values{"name": {"Burger"}, "price": {"120"}})
	postForm(router, "/add_to_cart", url.Values{"name": {"Fries"}, "price": {"60"}})
	get(router, "/remove_from_cart/1")
	postForm(router, "/add_to_cart", url.Values{"name": {"Iced Tea"}, "price": {"45"}})

	saved, err := store.Get(context.Background(), session.ID)
	require.NoError(t, err)
	require.Len(t, saved.Cart.Items, 2)
	assert.Equal(t, 2, saved.Cart.Items[0].ID)
	assert.Equal(t, 3, saved.Cart.Items[1].ID)
}

func TestGetCartTotals(t *testing.T) {
	router, _, _ := setupCartRouter(t)

	postForm(router, "/add_to_cart", url.Values{"name": {"Burger"}, "price": {"10"}})
	postForm(router, "/add_to_cart", url.Values{"name": {"Fries"}, "price": {"5"}})

	recorder := get(router, "/cart")
	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Subtotal    float64 `json:"subtotal"`
		DeliveryFee float64 `json:"deliveryFee"`
		Total       float64 `json:"total"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, 15.0, body.Subtotal)
	assert.Equal(t, 49.0, body.DeliveryFee)
	assert.Equal(t, 64.0, body.Total)
}

func TestClearCart(t *testing.T) {
	router, store, session := setupCartRouter(t)

	postForm(router, "/add_to_cart", url.Values{"name": {"Burger"}, "price": {"120"}})
	recorder := get(router, "/clear_cart")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Cart cleared.")

	saved, err := store.Get(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Empty(t, saved.Cart.Items)
}
