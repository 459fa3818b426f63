package handlers

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaults_AllocZeroed(t *testing.T) {
	InstallDefaults()

	buf := Alloc(16)
	require.Len(t, buf, 16)
	for _, b := range buf {
		require.Zero(t, b)
	}
}

func TestDefaults_ReallocPreservesContents(t *testing.T) {
	InstallDefaults()

	buf := Alloc(4)
	copy(buf, []byte{1, 2, 3, 4})

	grown := Realloc(buf, 8)
	require.Len(t, grown, 8)
	require.Equal(t, []byte{1, 2, 3, 4}, grown[:4])

	shrunk := Realloc(grown, 2)
	require.Equal(t, []byte{1, 2}, shrunk)
}

func TestInstall_CustomHandlersReceiveCalls(t *testing.T) {
	t.Cleanup(InstallDefaults)

	var allocs []int
	var messages []string
	Install(Handlers{
		Alloc: func(size int) []byte {
			allocs = append(allocs, size)
			return make([]byte, size)
		},
		Warn: func(format string, args ...any) {
			messages = append(messages, fmt.Sprintf(format, args...))
		},
	})

	Alloc(32)
	Warnf("patch %d grew", 7)

	require.Equal(t, []int{32}, allocs)
	require.Equal(t, []string{"patch 7 grew"}, messages)
}

func TestInstall_NilFieldsFallBackToDefaults(t *testing.T) {
	t.Cleanup(InstallDefaults)

	Install(Handlers{})

	h := Current()
	require.NotNil(t, h.Alloc)
	require.NotNil(t, h.Realloc)
	require.NotNil(t, h.Error)
	require.NotNil(t, h.Info)
	require.NotNil(t, h.Warn)
	require.Len(t, Alloc(3), 3)
}
