package generator

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/machinegen/internal/ctxlog"
	"github.com/vk/machinegen/internal/hcl"
	"github.com/vk/machinegen/internal/model"
	"github.com/vk/machinegen/internal/render"
	"github.com/vk/machinegen/internal/testutil"
)

var joinLines = render.RenderFunc(func(_ string, vars render.Variables) (string, error) {
	return strings.Join(vars.Fragments, "\n"), nil
})

// setup creates a machines directory and an output directory and returns a
// Config pointing at them that uses the built-in template.
func setup(t *testing.T, files map[string]string) Config {
	t.Helper()
	root := t.TempDir()
	machines := filepath.Join(root, "machines")
	require.NoError(t, os.Mkdir(machines, 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(root, "src"), 0o755))
	testutil.WriteFiles(t, machines, files)

	return Config{
		SourceDir:  machines,
		OutputPath: filepath.Join(root, "src", "examples.ts"),
		Template:   hcl.DefaultTemplate,
		Atomic:     true,
	}
}

// entries pulls every `key: `value“ entry back out of a generated document.
func entries(t *testing.T, doc string, names []string) map[string]string {
	t.Helper()
	out := make(map[string]string, len(names))
	for _, name := range names {
		prefix := "\n  " + render.Key(name) + ": `"
		i := strings.Index(doc, prefix)
		require.GreaterOrEqual(t, i, 0, "entry %q not found", name)
		start := i + len(prefix) - 1

		end := -1
		for j := start + 1; j < len(doc); j++ {
			if doc[j] == '\\' {
				j++
				continue
			}
			if doc[j] == '`' {
				end = j
				break
			}
		}
		require.Positive(t, end, "entry %q is not terminated", name)

		text, ok := render.UnquoteTemplateLiteral(doc[start : end+1])
		require.True(t, ok, "entry %q is not a valid literal", name)
		out[name] = text
	}
	return out
}

func TestRun_EntryPerFileInNaturalOrder(t *testing.T) {
	cfg := setup(t, map[string]string{
		"file2.js":  "Machine({ id: 'two' })",
		"file10.js": "Machine({ id: 'ten' })",
		"file1.js":  "Machine({ id: 'one' })",
	})

	res, err := Run(context.Background(), cfg, hcl.NewTemplateRenderer(""))
	require.NoError(t, err)

	if diff := cmp.Diff([]string{"file1", "file2", "file10"}, res.Names); diff != "" {
		t.Errorf("unexpected entry order (-want +got):\n%s", diff)
	}

	doc := testutil.ReadFile(t, cfg.OutputPath)
	assert.Equal(t, res.Document, doc)
	one := strings.Index(doc, "file1:")
	two := strings.Index(doc, "file2:")
	ten := strings.Index(doc, "file10:")
	assert.True(t, one < two && two < ten, "entries out of order:\n%s", doc)
	assert.Equal(t, 3, strings.Count(doc, ": `Machine("))
}

func TestRun_AlphaExample(t *testing.T) {
	cfg := setup(t, map[string]string{
		"alpha.js": "Machine({id:'x', states:{a:{}}})",
	})

	_, err := Run(context.Background(), cfg, hcl.NewTemplateRenderer(""))
	require.NoError(t, err)
	assert.Contains(t, testutil.ReadFile(t, cfg.OutputPath), "alpha: `Machine({id:'x', states:{a:{}}})`")
}

func TestRun_RoundTrip(t *testing.T) {
	defs := map[string]string{
		"quotes":    "Machine({ a: 'single', b: \"double\", c: `back${tick}` })",
		"slashes":   `Machine({ re: '\\d+\n', path: 'C:\\tmp' })`,
		"multiline": "Machine({\n  id: 'lines',\r\n  initial: 'a',\n})",
		"unicode":   "Machine({ id: 're\u0301sume\u0301', emoji: '🚦' })",
	}
	files := make(map[string]string, len(defs))
	for name, def := range defs {
		files[name+".js"] = "import { Machine } from 'xstate'\n\nexport default " + def + ";\n"
	}
	cfg := setup(t, files)

	res, err := Run(context.Background(), cfg, hcl.NewTemplateRenderer(""))
	require.NoError(t, err)

	got := entries(t, testutil.ReadFile(t, cfg.OutputPath), res.Names)
	if diff := cmp.Diff(defs, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_KeysThatNeedQuoting(t *testing.T) {
	cfg := setup(t, map[string]string{
		"re\u0301sume\u0301.js": "Machine({ id: 'nfd' })",
		"__proto__.js":          "Machine({ id: 'proto' })",
	})

	res, err := Run(context.Background(), cfg, hcl.NewTemplateRenderer(""))
	require.NoError(t, err)

	doc := testutil.ReadFile(t, cfg.OutputPath)
	assert.Contains(t, doc, "\n  \"re\\u0301sume\\u0301\": `Machine({ id: 'nfd' })`")
	assert.Contains(t, doc, "\n  [\"__proto__\"]: `Machine({ id: 'proto' })`")
	assert.NotContains(t, doc, "r\u00e9sum\u00e9")

	want := map[string]string{
		"re\u0301sume\u0301": "Machine({ id: 'nfd' })",
		"__proto__":          "Machine({ id: 'proto' })",
	}
	if diff := cmp.Diff(want, entries(t, doc, res.Names)); diff != "" {
		t.Errorf("unexpected entries (-want +got):\n%s", diff)
	}
}

func TestGenerate_CustomMarker(t *testing.T) {
	cfg := setup(t, map[string]string{
		"a.js": "import { createMachine } from 'xstate'\nexport default createMachine({ id: 'a' })",
	})
	cfg.Marker = "createMachine"

	var buf testutil.SafeBuffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := ctxlog.WithLogger(context.Background(), logger)

	res, err := Generate(ctx, cfg, joinLines)
	require.NoError(t, err)
	assert.Equal(t, "a: `createMachine({ id: 'a' })`", res.Document)
	assert.Contains(t, buf.String(), "marker=createMachine")
}

func TestRun_EmptyDirectory(t *testing.T) {
	cfg := setup(t, nil)

	res, err := Run(context.Background(), cfg, hcl.NewTemplateRenderer(""))
	require.NoError(t, err)
	assert.Empty(t, res.Names)
	assert.Contains(t, testutil.ReadFile(t, cfg.OutputPath), "export const examples = {\n}\n")
}

func TestRun_CustomTemplateFile(t *testing.T) {
	cfg := setup(t, map[string]string{
		"a.js": "Machine({ id: 'a' })",
		"b.js": "Machine({ id: 'b' })",
	})
	cfg.TemplatePath = filepath.Join(filepath.Dir(cfg.OutputPath), "custom.tmpl")
	cfg.Template = ""
	require.NoError(t, os.WriteFile(cfg.TemplatePath, []byte("%{ for f in fragments }${f};%{ endfor }"), 0o644))

	_, err := Run(context.Background(), cfg, hcl.NewTemplateRenderer(cfg.TemplatePath))
	require.NoError(t, err)
	assert.Equal(t, "a: `Machine({ id: 'a' })`;b: `Machine({ id: 'b' })`;", testutil.ReadFile(t, cfg.OutputPath))
}

func TestRun_InMemoryRenderer(t *testing.T) {
	cfg := setup(t, map[string]string{
		"my-machine.js": "Machine({})",
		"other.js":      "Machine({ x: 1 })",
	})

	res, err := Run(context.Background(), cfg, joinLines)
	require.NoError(t, err)
	assert.Equal(t, "\"my-machine\": `Machine({})`\nother: `Machine({ x: 1 })`", res.Document)
}

func TestRun_FailuresLeaveOutputUntouched(t *testing.T) {
	const previous = "previous output"

	cases := []struct {
		name   string
		files  map[string]string
		mutate func(cfg *Config)
		want   error
	}{
		{
			name:  "no definition",
			files: map[string]string{"good.js": "Machine({})", "bad.js": "export default {}"},
			want:  model.ErrNoDefinitionFound,
		},
		{
			name:  "unbalanced definition",
			files: map[string]string{"open.js": "Machine({ id: 'x'"},
			want:  model.ErrUnbalancedDefinition,
		},
		{
			name:  "duplicate name",
			files: map[string]string{"a.js": "Machine({})", "a.ts": "Machine({})"},
			want:  model.ErrDuplicateName,
		},
		{
			name:  "nfd and nfc names collide",
			files: map[string]string{"re\u0301sume\u0301.js": "Machine({})", "r\u00e9sum\u00e9.js": "Machine({})"},
			want:  model.ErrDuplicateName,
		},
		{
			name:  "invalid utf-8",
			files: map[string]string{"good.js": "Machine({})", "bad.js": "Machine({ id: '\xff\xfe' })"},
			want:  model.ErrReadFailure,
		},
		{
			name:   "missing source directory",
			files:  nil,
			mutate: func(cfg *Config) { cfg.SourceDir = filepath.Join(cfg.SourceDir, "missing") },
			want:   model.ErrDirectoryNotFound,
		},
		{
			name:  "missing template file",
			files: map[string]string{"a.js": "Machine({})"},
			mutate: func(cfg *Config) {
				cfg.TemplatePath = filepath.Join(cfg.SourceDir, "..", "missing.tmpl")
			},
			want: model.ErrTemplateFailure,
		},
		{
			name:   "broken template",
			files:  map[string]string{"a.js": "Machine({})"},
			mutate: func(cfg *Config) { cfg.Template = "${unknown}" },
			want:   model.ErrTemplateFailure,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := setup(t, tc.files)
			require.NoError(t, os.WriteFile(cfg.OutputPath, []byte(previous), 0o644))
			if tc.mutate != nil {
				tc.mutate(&cfg)
			}

			_, err := Run(context.Background(), cfg, hcl.NewTemplateRenderer(""))
			require.ErrorIs(t, err, tc.want)
			assert.Equal(t, previous, testutil.ReadFile(t, cfg.OutputPath))
		})
	}
}

func TestRun_WriteFailure(t *testing.T) {
	cfg := setup(t, map[string]string{"a.js": "Machine({})"})
	cfg.OutputPath = filepath.Join(filepath.Dir(cfg.OutputPath), "missing", "examples.ts")

	_, err := Run(context.Background(), cfg, hcl.NewTemplateRenderer(""))
	require.ErrorIs(t, err, model.ErrWriteFailure)
	assert.NoFileExists(t, cfg.OutputPath)
}

func TestGenerate_DoesNotWrite(t *testing.T) {
	cfg := setup(t, map[string]string{"a.js": "Machine({})"})

	res, err := Generate(context.Background(), cfg, joinLines)
	require.NoError(t, err)
	assert.Equal(t, "a: `Machine({})`", res.Document)
	assert.NoFileExists(t, cfg.OutputPath)
}

func TestConfig_Validate(t *testing.T) {
	err := Config{}.Validate()
	require.Error(t, err)
	assert.ErrorContains(t, err, "source directory is required")
	assert.ErrorContains(t, err, "output path is required")
	assert.ErrorContains(t, err, "template")

	_, err = Run(context.Background(), Config{}, joinLines)
	assert.ErrorContains(t, err, "invalid generator config")
}
