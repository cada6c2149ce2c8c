package middleware

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/Dittner/DerTutor/internal/config"
	"github.com/Dittner/DerTutor/internal/models"
	"github.com/Dittner/DerTutor/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSecret = "test-secret"

func newAuthTestRouter(t *testing.T) (*gin.Engine, *gorm.DB, *utils.TokenManager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	tokens := utils.NewTokenManager(config.TokenConfig{
		SecretKey:         testSecret,
		AccessExpireDays:  1,
		RefreshExpireDays: 30,
	})

	router := gin.New()
	router.GET("/probe", Auth(db, tokens, false), func(c *gin.Context) {
		user, ok := CurrentUser(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"username": user.Username})
	})
	return router, db, tokens
}

func createUser(t *testing.T, db *gorm.DB, username string, active, superuser bool) *models.User {
	t.Helper()

	user := &models.User{
		Username:       username,
		HashedPassword: "x",
		IsActive:       active,
		IsSuperuser:    superuser,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func signToken(t *testing.T, userID uint, ttl time.Duration) string {
	t.Helper()

	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(uint64(userID), 10),
		IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func probe(router *gin.Engine, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAuth_MissingCookies(t *testing.T) {
	router, db, tokens := newAuthTestRouter(t)
	user := createUser(t, db, "admin", true, true)
	access, _, err := tokens.IssuePair(user.ID)
	require.NoError(t, err)

	tests := []struct {
		name    string
		cookies []*http.Cookie
	}{
		{name: "no cookies", cookies: nil},
		{name: "access only", cookies: []*http.Cookie{{Name: utils.AccessTokenName, Value: access}}},
		{name: "refresh only", cookies: []*http.Cookie{{Name: utils.RefreshTokenName, Value: access}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := probe(router, tt.cookies...)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), "Authentication is required")
		})
	}
}

func TestAuth_ValidPair(t *testing.T) {
	router, db, tokens := newAuthTestRouter(t)
	user := createUser(t, db, "admin", true, true)

	access, refresh, err := tokens.IssuePair(user.ID)
	require.NoError(t, err)

	rec := probe(router,
		&http.Cookie{Name: utils.AccessTokenName, Value: access},
		&http.Cookie{Name: utils.RefreshTokenName, Value: refresh},
	)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "admin")
	assert.Empty(t, rec.Result().Cookies(), "a valid access token must not trigger rotation")
}

func TestAuth_ExpiredAccessRotatesSilently(t *testing.T) {
	router, db, _ := newAuthTestRouter(t)
	user := createUser(t, db, "admin", true, true)

	expiredAccess := signToken(t, user.ID, -time.Minute)
	validRefresh := signToken(t, user.ID, 24*time.Hour)

	rec := probe(router,
		&http.Cookie{Name: utils.AccessTokenName, Value: expiredAccess},
		&http.Cookie{Name: utils.RefreshTokenName, Value: validRefresh},
	)
	assert.Equal(t, http.StatusOK, rec.Code)

	var names []string
	for _, cookie := range rec.Result().Cookies() {
		names = append(names, cookie.Name)
		assert.True(t, cookie.HttpOnly)
		assert.NotEmpty(t, cookie.Value)
	}
	assert.ElementsMatch(t, []string{utils.AccessTokenName, utils.RefreshTokenName}, names)
}

func TestAuth_BothTokensExpired(t *testing.T) {
	router, db, _ := newAuthTestRouter(t)
	user := createUser(t, db, "admin", true, true)

	rec := probe(router,
		&http.Cookie{Name: utils.AccessTokenName, Value: signToken(t, user.ID, -time.Hour)},
		&http.Cookie{Name: utils.RefreshTokenName, Value: signToken(t, user.ID, -time.Minute)},
	)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Token is expired")
}

func TestAuth_InvalidToken(t *testing.T) {
	router, db, tokens := newAuthTestRouter(t)
	user := createUser(t, db, "admin", true, true)
	_, refresh, err := tokens.IssuePair(user.ID)
	require.NoError(t, err)

	rec := probe(router,
		&http.Cookie{Name: utils.AccessTokenName, Value: "garbage"},
		&http.Cookie{Name: utils.RefreshTokenName, Value: refresh},
	)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid token")
}

func TestAuth_UnknownUser(t *testing.T) {
	router, _, tokens := newAuthTestRouter(t)

	access, refresh, err := tokens.IssuePair(999)
	require.NoError(t, err)

	rec := probe(router,
		&http.Cookie{Name: utils.AccessTokenName, Value: access},
		&http.Cookie{Name: utils.RefreshTokenName, Value: refresh},
	)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "User not found")
}

func TestAuth_PolicyViolations(t *testing.T) {
	router, db, tokens := newAuthTestRouter(t)
	inactive := createUser(t, db, "inactive", false, true)
	regular := createUser(t, db, "regular", true, false)

	for _, user := range []*models.User{inactive, regular} {
		t.Run(user.Username, func(t *testing.T) {
			access, refresh, err := tokens.IssuePair(user.ID)
			require.NoError(t, err)

			rec := probe(router,
				&http.Cookie{Name: utils.AccessTokenName, Value: access},
				&http.Cookie{Name: utils.RefreshTokenName, Value: refresh},
			)
			assert.Equal(t, http.StatusForbidden, rec.Code)
			assert.Contains(t, rec.Body.String(), "Access denied")
		})
	}
}
