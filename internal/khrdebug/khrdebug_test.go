package khrdebug

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/obinnaokechukwu/egl/internal/errcode"
)

type recorder struct {
	mu   sync.Mutex
	msgs []Message
}

func (r *recorder) callback(m Message) {
	r.mu.Lock()
	r.msgs = append(r.msgs, m)
	r.mu.Unlock()
}

func (r *recorder) messages() []Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Message(nil), r.msgs...)
}

func TestDefaultsEnableAllButInfo(t *testing.T) {
	r := NewRouter()
	assert.True(t, r.Enabled(KindCritical))
	assert.True(t, r.Enabled(KindError))
	assert.True(t, r.Enabled(KindWarning))
	assert.False(t, r.Enabled(KindInfo))
	assert.False(t, r.Enabled(Kind(0)))
}

func TestPostDeliversFieldsUnmodified(t *testing.T) {
	r := NewRouter()
	rec := &recorder{}
	r.Configure(rec.callback)

	want := Message{
		Error:       errcode.BadDisplay,
		Command:     "eglInitialize",
		Kind:        KindError,
		ThreadLabel: 0x10,
		ObjectLabel: 0x20,
		Text:        "display is not live",
	}
	r.Post(want)

	msgs := rec.messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, want, msgs[0])
}

func TestPostWithoutCallbackIsDropped(t *testing.T) {
	r := NewRouter()
	assert.NotPanics(t, func() {
		r.Post(Message{Kind: KindCritical, Text: "nobody listening"})
	})
}

func TestSeverityFiltering(t *testing.T) {
	for _, kind := range Kinds {
		t.Run(kind.String(), func(t *testing.T) {
			for _, on := range []bool{true, false} {
				r := NewRouter()
				rec := &recorder{}
				r.Configure(rec.callback)
				r.SetEnabled(kind, on)

				r.Post(Message{Kind: kind})

				if on {
					assert.Len(t, rec.messages(), 1, "enabled %s should fire", kind)
				} else {
					assert.Empty(t, rec.messages(), "disabled %s should not fire", kind)
				}
			}
		})
	}
}

func TestToggleAffectsOnlyLaterMessages(t *testing.T) {
	r := NewRouter()
	rec := &recorder{}
	r.Configure(rec.callback)

	r.Post(Message{Kind: KindWarning, Text: "first"})
	r.SetEnabled(KindWarning, false)
	r.Post(Message{Kind: KindWarning, Text: "second"})
	r.SetEnabled(KindWarning, true)
	r.Post(Message{Kind: KindWarning, Text: "third"})

	msgs := rec.messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, "first", msgs[0].Text)
	assert.Equal(t, "third", msgs[1].Text)
}

func TestUnknownKindIsDropped(t *testing.T) {
	r := NewRouter()
	rec := &recorder{}
	r.Configure(rec.callback)

	r.Post(Message{Kind: Kind(0x1234)})
	assert.Empty(t, rec.messages())
}

func TestConfigureReplacesAndClearsCallback(t *testing.T) {
	r := NewRouter()
	first, second := &recorder{}, &recorder{}

	r.Configure(first.callback)
	r.Configure(second.callback)
	r.Post(Message{Kind: KindError})

	assert.Empty(t, first.messages())
	assert.Len(t, second.messages(), 1)

	r.Configure(nil)
	r.Post(Message{Kind: KindError})
	assert.Len(t, second.messages(), 1)
}

func TestControlAppliesAttributes(t *testing.T) {
	r := NewRouter()
	rec := &recorder{}

	code := r.Control(rec.callback, 0xABC, []int32{
		int32(KindInfo), True,
		int32(KindWarning), False,
		AttribNone,
	})
	require.Equal(t, errcode.Success, code)

	assert.True(t, r.Enabled(KindInfo))
	assert.False(t, r.Enabled(KindWarning))

	tag, ok := r.Query(AttribCallback)
	require.True(t, ok)
	assert.Equal(t, uintptr(0xABC), tag)

	v, ok := r.Query(int32(KindInfo))
	require.True(t, ok)
	assert.Equal(t, uintptr(True), v)

	v, ok = r.Query(int32(KindWarning))
	require.True(t, ok)
	assert.Equal(t, uintptr(False), v)

	_, ok = r.Query(0x1234)
	assert.False(t, ok)
}

func TestControlStopsAtNone(t *testing.T) {
	r := NewRouter()
	code := r.Control(nil, 0, []int32{AttribNone, int32(KindInfo), True})
	require.Equal(t, errcode.Success, code)
	assert.False(t, r.Enabled(KindInfo))
}

func TestControlRejectsBadAttributesAtomically(t *testing.T) {
	tests := []struct {
		name    string
		attribs []int32
	}{
		{"unknown name", []int32{0x1234, True, AttribNone}},
		{"callback is query only", []int32{AttribCallback, True, AttribNone}},
		{"bad value", []int32{int32(KindInfo), 7, AttribNone}},
		{"missing value", []int32{int32(KindInfo)}},
		{"valid then invalid", []int32{int32(KindCritical), False, int32(KindInfo), 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRouter()
			old := &recorder{}
			r.Control(old.callback, 1, nil)

			code := r.Control((&recorder{}).callback, 2, tt.attribs)
			assert.Equal(t, errcode.BadAttribute, code)

			tag, _ := r.Query(AttribCallback)
			assert.Equal(t, uintptr(1), tag, "callback must not change on failure")
			assert.True(t, r.Enabled(KindCritical), "flags must not change on failure")
			assert.False(t, r.Enabled(KindInfo), "flags must not change on failure")

			r.Post(Message{Kind: KindError})
			assert.Len(t, old.messages(), 1)
		})
	}
}

func TestControlNilCallbackClearsTag(t *testing.T) {
	r := NewRouter()
	r.Control((&recorder{}).callback, 0x55, nil)
	r.Control(nil, 0x66, nil)

	tag, ok := r.Query(AttribCallback)
	require.True(t, ok)
	assert.Zero(t, tag)
}

func TestCallbackMayReenterRouter(t *testing.T) {
	r := NewRouter()
	rec := &recorder{}

	r.Configure(func(m Message) {
		rec.callback(m)
		if m.Text == "outer" {
			r.Post(Message{Kind: KindError, Text: "inner"})
			r.SetEnabled(KindInfo, true)
		}
	})

	done := make(chan struct{})
	go func() {
		r.Post(Message{Kind: KindError, Text: "outer"})
		close(done)
	}()
	<-done

	msgs := rec.messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, "outer", msgs[0].Text)
	assert.Equal(t, "inner", msgs[1].Text)
	assert.True(t, r.Enabled(KindInfo))
}

func TestCallbackPanicIsRecoveredAndLogged(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	r := NewRouter()
	r.SetLogger(zap.New(core))
	r.Configure(func(Message) { panic("boom") })

	assert.NotPanics(t, func() {
		r.Post(Message{Kind: KindCritical, Command: "eglTerminate"})
	})

	entries := logs.FilterMessage("debug callback panicked").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "eglTerminate", entries[0].ContextMap()["command"])
}

func TestConcurrentConfigureLastWriterWins(t *testing.T) {
	const n = 32
	r := NewRouter()

	var (
		mu    sync.Mutex
		fired []int
	)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(id int) {
			defer wg.Done()
			r.Control(func(Message) {
				mu.Lock()
				fired = append(fired, id)
				mu.Unlock()
			}, uintptr(id+1), nil)
		}(i)
	}
	wg.Wait()

	r.Post(Message{Kind: KindError})

	require.Len(t, fired, 1, "exactly one callback should be active")
	tag, _ := r.Query(AttribCallback)
	assert.Equal(t, uintptr(fired[0]+1), tag, "callback and tag must come from the same Control call")
}

func TestConcurrentPostAndControl(t *testing.T) {
	r := NewRouter()
	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				on := True
				if j%2 == 0 {
					on = False
				}
				r.Control(func(Message) {}, uintptr(id), []int32{int32(KindInfo), on, AttribNone})
			}
		}(i)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				r.Post(Message{Kind: Kinds[j%len(Kinds)]})
			}
		}()
	}
	wg.Wait()
}

func TestDefaultIsSingleton(t *testing.T) {
	var wg sync.WaitGroup
	routers := make([]*Router, 16)
	for i := range routers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			routers[i] = Default()
		}(i)
	}
	wg.Wait()

	for i, r := range routers {
		require.NotNil(t, r)
		assert.Same(t, routers[0], r, "router %d differs", i)
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds {
		got, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	got, err := ParseKind(" Information ")
	require.NoError(t, err)
	assert.Equal(t, KindInfo, got)

	_, err = ParseKind("verbose")
	assert.Error(t, err)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "critical", KindCritical.String())
	assert.Equal(t, fmt.Sprintf("kind(0x%04X)", 7), Kind(7).String())
}
