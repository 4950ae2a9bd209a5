package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func contextWith(t *testing.T, path string, headers map[string]string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", path, nil)
	for k, v := range headers {
		c.Request.Header.Set(k, v)
	}
	return c
}

func TestResolveLocale(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		headers map[string]string
		want    string
	}{
		{"query param", "/api/services?locale=zh", nil, "zh"},
		{"unsupported query falls back", "/api/services?locale=th", nil, "en"},
		{"accept-language", "/api/services", map[string]string{"Accept-Language": "ko-KR,ko;q=0.9"}, "ko"},
		{"accept-language skips unsupported", "/api/services", map[string]string{"Accept-Language": "fr-FR,zh-CN;q=0.8"}, "zh"},
		{"query wins over header", "/api/services?locale=zh", map[string]string{"Accept-Language": "ko"}, "zh"},
		{"default", "/api/services", nil, "en"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := contextWith(t, tt.path, tt.headers)
			if got := ResolveLocale(c); got != tt.want {
				t.Errorf("ResolveLocale() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTranslationFallback(t *testing.T) {
	if got := T("zh", MsgNotFound); got != "资源不存在" {
		t.Errorf("T(zh, not_found) = %q", got)
	}
	if got := T("th", MsgNotFound); got != T("en", MsgNotFound) {
		t.Errorf("unsupported locale should fall back to English, got %q", got)
	}
	if got := T("en", "no-such-key"); got != "" {
		t.Errorf("unknown key should yield empty string, got %q", got)
	}
}
