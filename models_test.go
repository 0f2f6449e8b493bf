package gravityzone_test

import (
	"errors"
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mnehpets/gravityzone"
)

func TestDecode(t *testing.T) {
	// Numbers in decoded items arrive as float64 and must land in int fields.
	item := map[string]any{"id": "pkg-1", "name": "Deploy kit", "type": float64(4)}

	var pkg gravityzone.Package
	require.NoError(t, gravityzone.Decode(item, &pkg))
	assert.Equal(t, "pkg-1", pkg.ID)
	assert.Equal(t, "Deploy kit", pkg.Name)
	assert.Equal(t, gravityzone.PackageTypeEndpointSecurityTools, pkg.Type)
}

func TestDecode_IgnoresUnknownKeys(t *testing.T) {
	item := map[string]any{"id": "pkg-1", "somethingNew": true}

	var pkg gravityzone.Package
	require.NoError(t, gravityzone.Decode(item, &pkg))
	assert.Equal(t, "pkg-1", pkg.ID)
}

func TestDecode_TypeMismatch(t *testing.T) {
	item := map[string]any{"type": "not-a-number"}

	var pkg gravityzone.Package
	err := gravityzone.Decode(item, &pkg)
	require.Error(t, err)
	assert.ErrorContains(t, err, "decode item")
}

func TestDecodeSeq(t *testing.T) {
	boom := errors.New("boom")
	raw := iter.Seq2[map[string]any, error](func(yield func(map[string]any, error) bool) {
		if !yield(map[string]any{"id": "p1", "type": float64(3)}, nil) {
			return
		}
		yield(nil, boom)
	})

	var pkgs []gravityzone.Package
	var last error
	for p, err := range gravityzone.DecodeSeq[gravityzone.Package](raw) {
		if err != nil {
			last = err
			break
		}
		pkgs = append(pkgs, p)
	}

	require.Len(t, pkgs, 1)
	assert.Equal(t, gravityzone.PackageTypeSecurityVirtualAppliance, pkgs[0].Type)
	assert.ErrorIs(t, last, boom)
}

func TestDecodeSeq_StopsOnDecodeFailure(t *testing.T) {
	raw := iter.Seq2[map[string]any, error](func(yield func(map[string]any, error) bool) {
		if !yield(map[string]any{"type": "bad"}, nil) {
			return
		}
		yield(map[string]any{"id": "never-reached"}, nil)
	})

	var count int
	var last error
	for _, err := range gravityzone.DecodeSeq[gravityzone.Package](raw) {
		if err != nil {
			last = err
			break
		}
		count++
	}
	assert.Zero(t, count)
	require.Error(t, last)
}
