package adapter_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"reqtrace.dev/pkg/reqtrace/internal/adapter"
	adaptermocks "reqtrace.dev/pkg/reqtrace/internal/adapter/mocks"
	m "reqtrace.dev/pkg/reqtrace/internal/model"
)

const sampleManifest = `requirements:
  - uid: REQ-1
    title: Parse input
    relations:
      - file: ./src/parser.go
        function: Parse
      - file: src/parser.go
        range: [10, 20]
      - parent: SYS-1
  - uid: REQ-2
    relations:
      - file: src/model.py
        class: Model
      - child: REQ-3
  - uid: REQ-3
`

func TestDecodeManifest(t *testing.T) {
	reqs, err := adapter.DecodeManifest(strings.NewReader(sampleManifest))
	require.NoError(t, err)
	require.Len(t, reqs, 3)

	assert.Equal(t, &m.Requirement{
		UID:   "REQ-1",
		Title: "Parse input",
		Relations: []m.Relation{
			{Type: "File", File: &m.FileReference{Path: "src/parser.go", Function: "Parse"}},
			{Type: "File", File: &m.FileReference{Path: "src/parser.go", Range: &m.LineRange{Start: 10, End: 20}}},
			{Type: "Parent", Target: "SYS-1"},
		},
	}, reqs[0])

	assert.Equal(t, []m.FileReference{{Path: "src/model.py", Class: "Model"}}, reqs[1].FileReferences())
	assert.Equal(t, m.Relation{Type: "Child", Target: "REQ-3"}, reqs[1].Relations[1])
	assert.Empty(t, reqs[2].Relations)
}

func TestDecodeManifest_Empty(t *testing.T) {
	reqs, err := adapter.DecodeManifest(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, reqs)
}

func TestDecodeManifest_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		manifest string
		invalid  bool
	}{
		{
			name:     "missing uid",
			manifest: "requirements:\n  - title: nameless\n",
			invalid:  true,
		},
		{
			name:     "two bindings",
			manifest: "requirements:\n  - uid: R\n    relations:\n      - file: a.go\n        function: F\n        range: [1, 2]\n",
			invalid:  true,
		},
		{
			name:     "range with one bound",
			manifest: "requirements:\n  - uid: R\n    relations:\n      - file: a.go\n        range: [1]\n",
			invalid:  true,
		},
		{
			name:     "empty relation",
			manifest: "requirements:\n  - uid: R\n    relations:\n      - {}\n",
			invalid:  true,
		},
		{
			name:     "file and parent",
			manifest: "requirements:\n  - uid: R\n    relations:\n      - file: a.go\n        parent: P\n",
			invalid:  true,
		},
		{
			name:     "unknown key",
			manifest: "requirements:\n  - uid: R\n    owner: me\n",
		},
		{
			name:     "malformed yaml",
			manifest: "requirements: [\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := adapter.DecodeManifest(strings.NewReader(tt.manifest))
			require.Error(t, err)
			assert.Equal(t, tt.invalid, errors.Is(err, adapter.ErrInvalidManifest))
		})
	}
}

func TestEncodeManifest_RoundTrip(t *testing.T) {
	reqs, err := adapter.DecodeManifest(strings.NewReader(sampleManifest))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, adapter.EncodeManifest(&buf, reqs))
	assert.Contains(t, buf.String(), "range: [10, 20]")

	decoded, err := adapter.DecodeManifest(&buf)
	require.NoError(t, err)
	assert.Equal(t, reqs, decoded)
}

func TestYAMLManifestStore_LoadRequirements(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockFSAdapter := new(adaptermocks.MockSourceFSAdapter)
	mockFSAdapter.EXPECT().ReadFile(ctx, m.Path("requirements.yaml")).Return([]byte(sampleManifest), nil)

	store := adapter.NewYAMLManifestStore(mockFSAdapter)

	// Act
	reqs, err := store.LoadRequirements(ctx, "requirements.yaml")

	// Assert
	require.NoError(t, err)
	assert.Len(t, reqs, 3)
	mockFSAdapter.AssertExpectations(t)
}

func TestYAMLManifestStore_LoadRequirements_Errors(t *testing.T) {
	t.Run("read failure", func(t *testing.T) {
		ctx := context.Background()
		testErr := errors.New("permission denied")
		mockFSAdapter := new(adaptermocks.MockSourceFSAdapter)
		mockFSAdapter.EXPECT().ReadFile(ctx, mock.Anything).Return(nil, testErr)

		_, err := adapter.NewYAMLManifestStore(mockFSAdapter).LoadRequirements(ctx, "requirements.yaml")

		require.ErrorIs(t, err, testErr)
		assert.Contains(t, err.Error(), "read manifest requirements.yaml")
		mockFSAdapter.AssertExpectations(t)
	})

	t.Run("decode failure", func(t *testing.T) {
		ctx := context.Background()
		mockFSAdapter := new(adaptermocks.MockSourceFSAdapter)
		mockFSAdapter.EXPECT().ReadFile(ctx, mock.Anything).Return([]byte("requirements:\n  - title: x\n"), nil)

		_, err := adapter.NewYAMLManifestStore(mockFSAdapter).LoadRequirements(ctx, "requirements.yaml")

		require.ErrorIs(t, err, adapter.ErrInvalidManifest)
		mockFSAdapter.AssertExpectations(t)
	})
}
