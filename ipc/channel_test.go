package ipc

import (
	"encoding/json"
	"testing"
)

func newTestChannel(h Handler) *Channel {
	reg := newChannelRegistry()
	return reg.add(h)
}

func TestChannel_OutOfOrderDelivery(t *testing.T) {
	var got []string
	ch := newTestChannel(func(payload json.RawMessage) {
		got = append(got, string(payload))
	})

	// Arrival order 2, 0, 1 must dispatch as 0, 1, 2.
	ch.Deliver(2, json.RawMessage(`"two"`))
	ch.Deliver(0, json.RawMessage(`"zero"`))
	ch.Deliver(1, json.RawMessage(`"one"`))

	want := []string{`"zero"`, `"one"`, `"two"`}
	if len(got) != len(want) {
		t.Fatalf("dispatched %d messages, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("message %d = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestChannel_NoHandlerDrops(t *testing.T) {
	ch := newTestChannel(nil)

	// Must not panic, and the sequence still advances.
	ch.Deliver(0, json.RawMessage(`1`))

	var got []string
	ch.OnMessage(func(payload json.RawMessage) {
		got = append(got, string(payload))
	})
	if len(got) != 0 {
		t.Fatal("message delivered before a handler was set must be discarded")
	}
}

func TestChannel_HandlerReplacement(t *testing.T) {
	var first, second int
	ch := newTestChannel(func(json.RawMessage) { first++ })

	ch.Deliver(0, json.RawMessage(`0`))
	ch.OnMessage(func(json.RawMessage) { second++ })
	ch.Deliver(1, json.RawMessage(`1`))

	if first != 1 {
		t.Errorf("previous handler fired %d times, want 1", first)
	}
	if second != 1 {
		t.Errorf("replacement handler fired %d times, want 1", second)
	}
}

func TestChannel_BufferedGoesToCurrentHandler(t *testing.T) {
	var first, second []uint64
	ch := newTestChannel(nil)
	ch.OnMessage(func(payload json.RawMessage) {
		var v uint64
		_ = json.Unmarshal(payload, &v)
		first = append(first, v)
	})

	// 1 and 2 are buffered behind the missing 0.
	ch.Deliver(1, json.RawMessage(`1`))
	ch.Deliver(2, json.RawMessage(`2`))

	ch.OnMessage(func(payload json.RawMessage) {
		var v uint64
		_ = json.Unmarshal(payload, &v)
		second = append(second, v)
	})

	// Filling the gap drains everything to the handler current at drain time.
	ch.Deliver(0, json.RawMessage(`0`))

	if len(first) != 0 {
		t.Errorf("replaced handler received %v, want nothing", first)
	}
	if len(second) != 3 || second[0] != 0 || second[1] != 1 || second[2] != 2 {
		t.Errorf("drain delivered %v, want [0 1 2]", second)
	}
}

func TestChannel_RegressedSequenceDropped(t *testing.T) {
	var count int
	ch := newTestChannel(func(json.RawMessage) { count++ })

	ch.Deliver(0, json.RawMessage(`0`))
	ch.Deliver(0, json.RawMessage(`0`))

	if count != 1 {
		t.Errorf("handler fired %d times, want 1 (duplicate dropped)", count)
	}
}

func TestChannel_MarshalSentinel(t *testing.T) {
	reg := newChannelRegistry()
	ch := reg.add(nil)

	data, err := json.Marshal(ch)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"__CHANNEL__:1"` {
		t.Errorf("marshal = %s, want \"__CHANNEL__:1\"", data)
	}

	// Ids are unique per registry lifetime.
	ch2 := reg.add(nil)
	if ch2.ID() == ch.ID() {
		t.Error("channel ids must not repeat")
	}
}

func TestRawBytes_MarshalByteArray(t *testing.T) {
	data, err := json.Marshal(RawBytes{0, 1, 255})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `[0,1,255]` {
		t.Errorf("marshal = %s, want [0,1,255]", data)
	}

	empty, err := json.Marshal(RawBytes{})
	if err != nil {
		t.Fatal(err)
	}
	if string(empty) != `[]` {
		t.Errorf("marshal = %s, want []", empty)
	}
}
