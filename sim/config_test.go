package sim

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultParameters_FieldEquivalence(t *testing.T) {
	got := DefaultParameters()
	want := Parameters{
		Seed:             42,
		Horizon:          1000,
		Servers:          2,
		MeanInterarrival: 1.0,
		MeanService:      1.5,
		TimeUnit:         "minutes",
	}
	assert.Equal(t, want, got)
}

func TestParameters_Validate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Parameters)
		ok     bool
	}{
		{"defaults valid", func(p *Parameters) {}, true},
		{"single server valid", func(p *Parameters) { p.Servers = 1 }, true},
		{"zero servers", func(p *Parameters) { p.Servers = 0 }, false},
		{"negative servers", func(p *Parameters) { p.Servers = -3 }, false},
		{"zero horizon", func(p *Parameters) { p.Horizon = 0 }, false},
		{"negative horizon", func(p *Parameters) { p.Horizon = -1 }, false},
		{"zero mean interarrival", func(p *Parameters) { p.MeanInterarrival = 0 }, false},
		{"zero mean service", func(p *Parameters) { p.MeanService = 0 }, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := DefaultParameters()
			tc.mutate(&p)
			err := p.Validate()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestLoadParameters_OverridesOnlyPresentFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	content := "seed: 7\nservers: 3\nmean_service: 2.25\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	params := DefaultParameters()
	err := LoadParameters(path, &params)
	assert.NoError(t, err)

	want := DefaultParameters()
	want.Seed = 7
	want.Servers = 3
	want.MeanService = 2.25
	assert.Equal(t, want, params)
}

func TestLoadParameters_MissingFile_Error(t *testing.T) {
	params := DefaultParameters()
	err := LoadParameters(filepath.Join(t.TempDir(), "absent.yaml"), &params)
	assert.Error(t, err)
}

// TestLoadParameters_UnknownField_Error verifies strict parsing: a typoed
// key must fail instead of silently simulating the wrong system.
func TestLoadParameters_UnknownField_Error(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	if err := os.WriteFile(path, []byte("sead: 7\n"), 0644); err != nil {
		t.Fatal(err)
	}

	params := DefaultParameters()
	err := LoadParameters(path, &params)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "sead")
}

func TestLoadParameters_EmptyFile_KeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	if err := os.WriteFile(path, []byte(""), 0644); err != nil {
		t.Fatal(err)
	}

	params := DefaultParameters()
	err := LoadParameters(path, &params)
	assert.NoError(t, err)
	assert.Equal(t, DefaultParameters(), params)
}
