//go:build !ios && !android && (amd64 || arm64)

package bridge

import (
	"runtime"
	"testing"

	"github.com/ebitengine/purego"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obinnaokechukwu/egl/internal/errcode"
	"github.com/obinnaokechukwu/egl/internal/khrdebug"
)

type received struct {
	errorCode   uint32
	command     string
	kind        int32
	threadLabel uintptr
	objectLabel uintptr
	message     string
}

func TestDebugCallbackNil(t *testing.T) {
	assert.Nil(t, DebugCallback(0))
}

func TestDebugCallbackRoundTrip(t *testing.T) {
	if runtime.GOOS != "linux" && runtime.GOOS != "darwin" {
		t.Skip("purego.NewCallback C trampolines are only exercised on linux and darwin")
	}

	var got []received
	fn := purego.NewCallback(func(errorCode uint32, command *byte, kind int32, threadLabel, objectLabel uintptr, message *byte) {
		got = append(got, received{
			errorCode:   errorCode,
			command:     GoString(command),
			kind:        kind,
			threadLabel: threadLabel,
			objectLabel: objectLabel,
			message:     GoString(message),
		})
	})

	cb := DebugCallback(fn)
	require.NotNil(t, cb)

	cb(khrdebug.Message{
		Error:       errcode.BadDisplay,
		Command:     "eglTerminate",
		Kind:        khrdebug.KindError,
		ThreadLabel: 0x11,
		ObjectLabel: 0x22,
		Text:        "display 0x1 is not a live display",
	})
	cb(khrdebug.Message{Kind: khrdebug.KindInfo})

	require.Len(t, got, 2)
	assert.Equal(t, received{
		errorCode:   0x3008,
		command:     "eglTerminate",
		kind:        0x33BA,
		threadLabel: 0x11,
		objectLabel: 0x22,
		message:     "display 0x1 is not a live display",
	}, got[0])
	assert.Equal(t, "", got[1].command)
	assert.Equal(t, "", got[1].message)
}

func TestDebugCallbackThroughRouter(t *testing.T) {
	if runtime.GOOS != "linux" && runtime.GOOS != "darwin" {
		t.Skip("purego.NewCallback C trampolines are only exercised on linux and darwin")
	}

	calls := 0
	fn := purego.NewCallback(func(errorCode uint32, command *byte, kind int32, threadLabel, objectLabel uintptr, message *byte) {
		calls++
	})

	r := khrdebug.NewRouter()
	require.Equal(t, errcode.Success, r.Control(DebugCallback(fn), fn, nil))

	r.Post(khrdebug.Message{Kind: khrdebug.KindWarning})
	r.Post(khrdebug.Message{Kind: khrdebug.KindInfo})

	assert.Equal(t, 1, calls)
	tag, _ := r.Query(khrdebug.AttribCallback)
	assert.Equal(t, fn, tag)
}
