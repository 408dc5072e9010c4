package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/pomgen/pkg/errors"
	"github.com/matzehuels/pomgen/pkg/pom"
)

// execute runs the CLI in dir and returns what the command wrote to its
// output stream.
func execute(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	isolateConfig(t)

	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(append([]string{"-C", dir}, args...))
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

// isolateConfig hides the user's configuration from the test.
func isolateConfig(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_DIRS", t.TempDir())
	xdg.Reload()
	t.Cleanup(xdg.Reload)
}

func TestCreateProject(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, dir, "create", "-n", "com.example.app", "--java", "1.8")
	require.NoError(t, err)

	info, err := pom.InspectFile(filepath.Join(dir, "pom.xml"))
	require.NoError(t, err)
	assert.Equal(t, "com.example.app", info.GroupID)
	assert.Equal(t, "app", info.ArtifactID)
	assert.Equal(t, "0.1.0.BUILD-SNAPSHOT", info.Version)
	assert.Equal(t, "jar", info.Packaging)
	assert.Equal(t, "1.8", info.Properties["java.version"])

	_, err = os.Stat(filepath.Join(dir, "src", "main", "resources", "log4j.properties"))
	assert.True(t, os.IsNotExist(err), "logging config is opt-in")
}

func TestCreateModule(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, dir, "create",
		"-n", "com.example.app",
		"-m", "my-module",
		"--parent", "com.example:parent-pom:1.0.0")
	require.NoError(t, err)

	info, err := pom.InspectFile(filepath.Join(dir, "my-module", "pom.xml"))
	require.NoError(t, err)
	assert.Empty(t, info.GroupID)
	assert.Equal(t, "my.module", info.ArtifactID)
	assert.Equal(t, "com.example:parent-pom:1.0.0", info.Parent.String())
}

func TestCreateLoggingConfig(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, dir, "create", "-n", "com.example.app", "-p", "war", "--logging-config")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "src", "main", "resources", "log4j.properties"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "log4j.rootLogger")
}

func TestCreateDryRun(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, dir, "create", "-n", "com.example.app", "--name", "Demo", "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, "<artifactId>demo</artifactId>")
	assert.Contains(t, out, "<name>Demo</name>")

	_, err = os.Stat(filepath.Join(dir, "pom.xml"))
	assert.True(t, os.IsNotExist(err), "dry run must not write")
}

func TestCreateErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"unknown packaging", []string{"create", "-n", "com.example", "-p", "ear"}, errors.ErrCodeNotFound},
		{"bad namespace", []string{"create", "-n", "com. example"}, errors.ErrCodeValidation},
		{"bad parent", []string{"create", "-n", "com.example", "--parent", "a:b"}, errors.ErrCodeValidation},
		{"bad java", []string{"create", "-n", "com.example", "--java", "latest"}, errors.ErrCodeValidation},
		{"module without parent", []string{"create", "-n", "com.example", "-m", "core"}, errors.ErrCodeValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, t.TempDir(), tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.GetCode(err), "got %v", err)
		})
	}

	_, err := execute(t, t.TempDir(), "create")
	assert.Error(t, err, "--namespace is required")
}

func TestConfigProvider(t *testing.T) {
	dir := t.TempDir()
	tmpl := `<project><parent/><groupId/><artifactId/><packaging/><name/><properties><java.version>JAVA_PRODUCT_VERSION</java.version></properties></project>`
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "templates"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "templates", "ear-template.xml"), []byte(tmpl), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pomgen.toml"), []byte(`java_version = "21"
packaging = "ear"

[[providers]]
id = "ear"
name = "ear"
template = "ear-template.xml"
template_dir = "templates"
`), 0644))

	_, err := execute(t, dir, "create", "-n", "org.acme.shop")
	require.NoError(t, err)

	info, err := pom.InspectFile(filepath.Join(dir, "pom.xml"))
	require.NoError(t, err)
	assert.Equal(t, "ear", info.Packaging)
	assert.Equal(t, "ear", info.ProviderID())
	assert.Equal(t, "21", info.Properties["java.version"])

	out, err := execute(t, dir, "providers")
	require.NoError(t, err)
	for _, id := range []string{"jar", "war", "pom", "ear"} {
		assert.Contains(t, out, id)
	}
}

func TestInspect(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, dir, "create", "-n", "com.example.app", "-p", "pom", "--java", "17")
	require.NoError(t, err)

	_, err = execute(t, dir, "inspect")
	assert.NoError(t, err)

	_, err = execute(t, dir, "inspect", filepath.Join(dir, "missing.xml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeFileNotFound))

	foreign := filepath.Join(dir, "foreign.xml")
	require.NoError(t, os.WriteFile(foreign, []byte("<project><artifactId>x</artifactId></project>"), 0644))
	_, err = execute(t, dir, "inspect", foreign)
	assert.NoError(t, err, "descriptors without a provider stamp are reported, not rejected")
}

func TestProviderTable(t *testing.T) {
	_, reg, err := (&CLI{Logger: newLogger(io.Discard, LogInfo), dir: t.TempDir()}).environment()
	require.NoError(t, err)

	out := providerTable(reg.Providers(), "jar")
	lines := strings.Split(out, "\n")
	assert.GreaterOrEqual(t, len(lines), 6, "header, separator and three rows")
	assert.Contains(t, out, "jar-module-template.xml")
	assert.Contains(t, out, "pom-template.xml")
}

func TestCompletion(t *testing.T) {
	out, err := execute(t, t.TempDir(), "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "pomgen")
}
