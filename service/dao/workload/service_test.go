package workload

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestService_Load(t *testing.T) {
	baseDir := t.TempDir()
	document := `
name: contention
policy: pip
resources: 1
processes:
  - id: 1
    lifespan: 6
    priority: 8
    acquisitions:
      - resource: 0
        at: 1
        duration: 4
  - id: 2
    arrival: 2
    lifespan: 4
    priority: 1
`
	if err := os.WriteFile(filepath.Join(baseDir, "contention.yaml"), []byte(document), 0o644); err != nil {
		t.Fatal(err)
	}

	service := New(WithBaseURL(baseDir))
	wl, err := service.Load(context.Background(), "contention")
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, "contention", wl.Name)
	assert.Equal(t, "pip", wl.Policy)
	assert.Equal(t, 1, wl.Resources)
	if !assert.Equal(t, 2, len(wl.Processes)) {
		return
	}
	// Init fills the execution estimate from the lifespan.
	assert.Equal(t, 6, wl.Processes[0].Burst)
	assert.Equal(t, 1, len(wl.Processes[0].Acquisitions))
	assert.Equal(t, 2, wl.Processes[1].Arrival)
}

func TestService_Load_NameFromLocation(t *testing.T) {
	baseDir := t.TempDir()
	document := `
processes:
  - id: 1
    lifespan: 2
`
	location := filepath.Join(baseDir, "basic.yaml")
	if err := os.WriteFile(location, []byte(document), 0o644); err != nil {
		t.Fatal(err)
	}

	service := New()
	wl, err := service.Load(context.Background(), location)
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, "basic", wl.Name)
}

func TestService_Load_Missing(t *testing.T) {
	service := New(WithBaseURL(t.TempDir()))
	_, err := service.Load(context.Background(), "absent")
	assert.Error(t, err)
}

func TestService_Decode_Invalid(t *testing.T) {
	service := New()
	var useCases = []struct {
		description string
		document    string
	}{
		{
			description: "malformed yaml",
			document:    "processes: [",
		},
		{
			description: "fails validation",
			document:    "processes:\n  - id: 1\n    lifespan: 0\n",
		},
	}
	for _, useCase := range useCases {
		_, err := service.Decode([]byte(useCase.document))
		assert.Error(t, err, useCase.description)
	}
}
