package manifest

import (
	"encoding/xml"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestRender(t *testing.T) {
	data, err := Render(Config{GroupID: "com.example", ArtifactID: "fleet"}, []string{"alpha", "beta"})
	require.NoError(t, err)

	var doc pom
	require.NoError(t, xml.Unmarshal(data, &doc))
	assert.Equal(t, "com.example", doc.GroupID)
	assert.Equal(t, "fleet", doc.ArtifactID)
	assert.Equal(t, DefaultVersion, doc.Version)
	assert.Equal(t, "pom", doc.Packaging)
	assert.Equal(t, []string{"../modules/alpha", "../modules/beta"}, doc.Modules)
	assert.Contains(t, string(data), "<modules>")
}

func TestService_Write(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pom", "pom.xml")
	svc := NewService(Config{Enabled: true, Path: path, ModulePrefix: "modules/"}, zaptest.NewLogger(t))

	require.NoError(t, svc.Write([]string{"alpha"}))
	require.NoError(t, svc.Write([]string{"alpha", "beta"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<module>modules/beta</module>")

	_, err = os.Stat(path + ".tmp")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestService_WriteDisabled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pom.xml")
	svc := NewService(Config{Enabled: false, Path: path}, zaptest.NewLogger(t))

	require.NoError(t, svc.Write([]string{"alpha"}))

	_, err := os.Stat(path)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
