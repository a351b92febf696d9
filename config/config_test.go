package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"go.uber.org/zap"

	"github.com/speakerdesk/sd_backend/testutils"

	"github.com/speakerdesk/sd_backend/environment"
)

// config files live at the repo root
func TestMain(m *testing.M) {
	err := os.Chdir("..")
	if err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func Test_NewAppConfig__should_return_correct_config_when_ENVIRONMENT_is_prod(t *testing.T) {
	restoreVars := testutils.SetEnvVars(map[string]string{environment.Environment: "prod"})
	defer restoreVars()

	env := environment.NewEnv(zap.NewNop())

	config, err := NewAppConfig(env)
	assert.NoError(t, err)

	assert.Equal(t, "Speakerdesk - Backend", config.Name)
}

func Test_NewAppConfig__should_return_correct_config_when_ENVIRONMENT_is_dev(t *testing.T) {
	restoreVars := testutils.SetEnvVars(map[string]string{environment.Environment: "dev"})
	defer restoreVars()

	env := environment.NewEnv(zap.NewNop())

	config, err := NewAppConfig(env)
	assert.NoError(t, err)

	assert.Equal(t, "Speakerdesk - Backend (dev)", config.Name)
}
