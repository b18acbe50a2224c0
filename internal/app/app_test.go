package app

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopmint/shopmint/internal/config"
	"github.com/shopmint/shopmint/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*httptest.Server, *testutil.Client) {
	t.Helper()

	cfg := config.Default()
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TokenDuration = time.Hour

	application, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { application.metricsCancel() })

	server := httptest.NewServer(application.Router())
	t.Cleanup(server.Close)

	return server, testutil.NewClient(server.URL)
}

type errorBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type userBody struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

func registerPayload(email string) map[string]string {
	return map[string]string{
		"firstName": "Ada",
		"lastName":  "Lovelace",
		"email":     email,
		"password":  "password123",
		"role":      "seller",
	}
}

// loginAs registers a fresh seller and logs in, returning the token and id.
func loginAs(t *testing.T, client *testutil.Client, email string) (string, string) {
	t.Helper()

	resp, err := client.POST("/api/auth/register", registerPayload(email))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp, err = client.POST("/api/auth/login", map[string]string{
		"email":    email,
		"password": "password123",
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result struct {
		Success bool     `json:"success"`
		Token   string   `json:"token"`
		User    userBody `json:"user"`
	}
	testutil.DecodeJSON(t, resp, &result)
	require.NotEmpty(t, result.Token)

	return result.Token, result.User.ID
}

func TestAuth_RegisterLoginMeFlow(t *testing.T) {
	_, client := newTestServer(t)
	email := testutil.RandomEmail()

	resp, err := client.POST("/api/auth/register", registerPayload(email))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	body := testutil.ReadBody(t, resp)
	assert.NotContains(t, body, "password", "response must never contain a password field")

	resp, err = client.POST("/api/auth/login", map[string]string{
		"email":    email,
		"password": "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var loginResult struct {
		Success bool     `json:"success"`
		Message string   `json:"message"`
		Token   string   `json:"token"`
		User    userBody `json:"user"`
	}
	testutil.DecodeJSON(t, resp, &loginResult)
	assert.True(t, loginResult.Success)
	assert.Equal(t, "Login successful", loginResult.Message)
	assert.NotEmpty(t, loginResult.Token)
	assert.Equal(t, email, loginResult.User.Email)
	assert.Equal(t, "seller", loginResult.User.Role)
	assert.NotEmpty(t, loginResult.User.ID)

	client.Token = loginResult.Token
	resp, err = client.GET("/api/auth/me")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var meResult struct {
		Success bool     `json:"success"`
		User    userBody `json:"user"`
	}
	testutil.DecodeJSON(t, resp, &meResult)
	assert.True(t, meResult.Success)
	assert.Equal(t, loginResult.User.ID, meResult.User.ID)
	assert.Equal(t, email, meResult.User.Email)
}

func TestAuth_Register_UniqueIDs(t *testing.T) {
	_, client := newTestServer(t)

	seen := make(map[string]bool)
	for i := 0; i < 3; i++ {
		resp, err := client.POST("/api/auth/register", registerPayload(testutil.RandomEmail()))
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var result struct {
			User userBody `json:"user"`
		}
		testutil.DecodeJSON(t, resp, &result)
		require.NotEmpty(t, result.User.ID)
		assert.False(t, seen[result.User.ID], "user ids must be unique")
		seen[result.User.ID] = true
	}
}

func TestAuth_Register_ValidationMessages(t *testing.T) {
	_, client := newTestServer(t)

	tests := []struct {
		name    string
		mutate  func(p map[string]string)
		message string
	}{
		{
			name:    "blank first name",
			mutate:  func(p map[string]string) { p["firstName"] = "  " },
			message: "Name is required",
		},
		{
			name:    "invalid email",
			mutate:  func(p map[string]string) { p["email"] = "not-an-email" },
			message: "Invalid email format",
		},
		{
			name:    "short password",
			mutate:  func(p map[string]string) { p["password"] = "short" },
			message: "Password must be at least 8 characters",
		},
		{
			name:    "invalid role",
			mutate:  func(p map[string]string) { p["role"] = "admin" },
			message: "Invalid role",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := registerPayload(testutil.RandomEmail())
			tt.mutate(payload)

			resp, err := client.POST("/api/auth/register", payload)
			require.NoError(t, err)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

			var body errorBody
			testutil.DecodeJSON(t, resp, &body)
			assert.False(t, body.Success)
			assert.Equal(t, tt.message, body.Message)
		})
	}
}

func TestAuth_Register_DuplicateEmail(t *testing.T) {
	_, client := newTestServer(t)
	email := testutil.RandomEmail()

	resp, err := client.POST("/api/auth/register", registerPayload(email))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp, err = client.POST("/api/auth/register", registerPayload(email))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body errorBody
	testutil.DecodeJSON(t, resp, &body)
	assert.Equal(t, "Email already exists", body.Message)
}

func TestAuth_Login_Failures(t *testing.T) {
	_, client := newTestServer(t)
	email := testutil.RandomEmail()

	resp, err := client.POST("/api/auth/register", registerPayload(email))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp, err = client.POST("/api/auth/login", map[string]string{
		"email":    "nobody@example.com",
		"password": "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body errorBody
	testutil.DecodeJSON(t, resp, &body)
	assert.Equal(t, "User not found", body.Message)

	resp, err = client.POST("/api/auth/login", map[string]string{
		"email":    email,
		"password": "wrong-password",
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	testutil.DecodeJSON(t, resp, &body)
	assert.Equal(t, "Invalid password", body.Message)
}

func TestAuth_Me_RequiresToken(t *testing.T) {
	_, client := newTestServer(t)

	resp, err := client.GET("/api/auth/me")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var body errorBody
	testutil.DecodeJSON(t, resp, &body)
	assert.Equal(t, "Authorization token missing", body.Message)

	client.Token = "garbage"
	resp, err = client.GET("/api/auth/me")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	testutil.DecodeJSON(t, resp, &body)
	assert.Equal(t, "Invalid or expired token", body.Message)
}

func TestProducts_ListSeeded(t *testing.T) {
	_, client := newTestServer(t)

	resp, err := client.GET("/api/products")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result struct {
		Success bool `json:"success"`
		Count   int  `json:"count"`
		Data    []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"data"`
	}
	testutil.DecodeJSON(t, resp, &result)
	assert.True(t, result.Success)
	assert.Equal(t, 3, result.Count)
	require.Len(t, result.Data, 3)
	assert.Equal(t, "iPhone 15 Pro", result.Data[0].Name)
}

func TestProducts_GetByID(t *testing.T) {
	_, client := newTestServer(t)

	resp, err := client.GET("/api/products/1")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result struct {
		Success bool `json:"success"`
		Data    struct {
			Name string `json:"name"`
		} `json:"data"`
	}
	testutil.DecodeJSON(t, resp, &result)
	assert.Equal(t, "iPhone 15 Pro", result.Data.Name)

	resp, err = client.GET("/api/products/nope")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body errorBody
	testutil.DecodeJSON(t, resp, &body)
	assert.Equal(t, "Product not found", body.Message)
}

func productPayload() map[string]interface{} {
	return map[string]interface{}{
		"name":     "Keyboard",
		"color":    "Black",
		"price":    49.90,
		"quantity": 12,
		"shopName": "Peripherals Inc",
		"brand":    "Clacky",
		"category": "Electronics",
		"images":   []string{"https://example.com/kb.png"},
	}
}

func TestProducts_MutationsRequireAuth(t *testing.T) {
	_, client := newTestServer(t)

	resp, err := client.POST("/api/products", productPayload())
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	resp, err = client.PUT("/api/products/1", map[string]interface{}{"price": 1})
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	resp, err = client.DELETE("/api/products/1")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestProducts_CRUDFlow(t *testing.T) {
	_, client := newTestServer(t)
	client.Token, _ = loginAs(t, client, testutil.RandomEmail())

	resp, err := client.POST("/api/products", productPayload())
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Data    struct {
			ID       string  `json:"id"`
			Name     string  `json:"name"`
			Price    float64 `json:"price"`
			Quantity float64 `json:"quantity"`
		} `json:"data"`
	}
	testutil.DecodeJSON(t, resp, &created)
	assert.True(t, created.Success)
	assert.Equal(t, "Product created successfully", created.Message)
	require.NotEmpty(t, created.Data.ID)

	resp, err = client.PUT("/api/products/"+created.Data.ID, map[string]interface{}{
		"price": 59.90,
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var updated struct {
		Data struct {
			Name  string  `json:"name"`
			Price float64 `json:"price"`
		} `json:"data"`
	}
	testutil.DecodeJSON(t, resp, &updated)
	assert.Equal(t, 59.90, updated.Data.Price)
	assert.Equal(t, "Keyboard", updated.Data.Name, "absent fields keep stored values")

	resp, err = client.DELETE("/api/products/" + created.Data.ID)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var deleted struct {
		Message string `json:"message"`
		Data    struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	testutil.DecodeJSON(t, resp, &deleted)
	assert.Equal(t, "Product deleted successfully", deleted.Message)
	assert.Equal(t, created.Data.ID, deleted.Data.ID)

	resp, err = client.GET("/api/products/" + created.Data.ID)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestProducts_CreateValidation(t *testing.T) {
	_, client := newTestServer(t)
	client.Token, _ = loginAs(t, client, testutil.RandomEmail())

	payload := productPayload()
	payload["images"] = []string{}

	resp, err := client.POST("/api/products", payload)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body errorBody
	testutil.DecodeJSON(t, resp, &body)
	assert.Equal(t, "At least one image is required", body.Message)

	payload = productPayload()
	payload["price"] = 0

	resp, err = client.POST("/api/products", payload)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	testutil.DecodeJSON(t, resp, &body)
	assert.Equal(t, "Price must be greater than 0", body.Message)
}

func TestProducts_UpdateValidation(t *testing.T) {
	_, client := newTestServer(t)
	client.Token, _ = loginAs(t, client, testutil.RandomEmail())

	resp, err := client.PUT("/api/products/1", map[string]interface{}{
		"quantity": -5,
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body errorBody
	testutil.DecodeJSON(t, resp, &body)
	assert.Equal(t, "Quantity cannot be negative", body.Message)
}

func TestProducts_ListEmptyStore(t *testing.T) {
	cfg := config.Default()
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TokenDuration = time.Hour

	application, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { application.metricsCancel() })

	// Drain the seeded store through the API.
	server := httptest.NewServer(application.Router())
	t.Cleanup(server.Close)
	client := testutil.NewClient(server.URL)
	client.Token, _ = loginAs(t, client, testutil.RandomEmail())

	for _, id := range []string{"1", "2", "3"} {
		resp, err := client.DELETE("/api/products/" + id)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()
	}

	resp, err := client.GET("/api/products")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body errorBody
	testutil.DecodeJSON(t, resp, &body)
	assert.Equal(t, "No product found", body.Message)
}

func TestHealthEndpoints(t *testing.T) {
	_, client := newTestServer(t)

	resp, err := client.GET("/healthz")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp, err = client.GET("/api/health")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var health struct {
		Message string `json:"message"`
	}
	testutil.DecodeJSON(t, resp, &health)
	assert.Equal(t, "E-commerce API is running!", health.Message)
}
