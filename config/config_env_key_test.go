package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"profileApi": map[string]any{
			"baseUrl": "http://localhost:4000",
		},
		"cache": map[string]any{
			"redis": map[string]any{
				"keyPrefix": "profile:",
			},
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "PROFILEAPI_BASEURL", want: "profileApi.baseUrl"},
		{envKey: "CACHE_REDIS_KEYPREFIX", want: "cache.redis.keyPrefix"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
