package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestFromViper_Defaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	cfg := fromViper(v)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "Asia/Kolkata", cfg.DefaultTimezone)
	assert.Equal(t, []string{"Dr. Smith (Cardiology)", "Dr. Jones (Pediatrics)"}, cfg.Doctors)
	assert.Equal(t, 200, cfg.AssistantMaxLength)
	assert.InDelta(t, 0.7, cfg.AssistantTemperature, 1e-9)
	assert.Equal(t, time.Minute, cfg.AssistantTimeout)
	assert.Equal(t, AssistantAuthNone, cfg.AssistantAuthMode)
	assert.Equal(t, 12*time.Hour, cfg.JWTExpiryDuration)
	assert.Equal(t, "5-M", cfg.AuthRateLimit)
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("DOCTORS", " Dr. Rao (Dermatology) ,, Dr. Iyer (ENT)")
	v.Set("ASSISTANT_AUTH_MODE", "Bearer")
	v.Set("JWT_EXPIRY_DURATION", "not-a-duration")

	cfg := fromViper(v)

	assert.Equal(t, []string{"Dr. Rao (Dermatology)", "Dr. Iyer (ENT)"}, cfg.Doctors)
	assert.Equal(t, AssistantAuthBearer, cfg.AssistantAuthMode)
	assert.Equal(t, 12*time.Hour, cfg.JWTExpiryDuration)
}

func TestFromViper_UnknownAuthMode(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("ASSISTANT_AUTH_MODE", "kerberos")

	assert.Equal(t, AssistantAuthNone, fromViper(v).AssistantAuthMode)
}
