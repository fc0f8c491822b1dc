// SPDX-License-Identifier: Apache-2.0
// Copyright 2024-present Open Networking Foundation

package codec

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omec-project/emm-codec/nas/ie"
)

// fakeIE is a fixed size IE whose codec reports n bytes or err.
type fakeIE struct {
	n     int
	err   error
	calls int
}

func (f *fakeIE) MarshalTo(b []byte, _ uint8) (int, error) {
	f.calls++
	if f.err != nil {
		return 0, f.err
	}

	for i := 0; i < f.n && i < len(b); i++ {
		b[i] = 0xee
	}

	return f.n, nil
}

func (f *fakeIE) Unmarshal(_ []byte, _ uint8) (int, error) {
	f.calls++
	if f.err != nil {
		return 0, f.err
	}

	return f.n, nil
}

func (f *fakeIE) MarshalLen(uint8) int { return f.n }
func (f *fakeIE) MinLen(uint8) int     { return f.n }

type testMsg struct {
	Cause ie.EMMCause
	Timer *ie.GPRSTimer
	TLV   *ie.GPRSTimer2
	Ext   *ie.ExtendedEMMCause
}

func (m *testMsg) sequence() Sequence {
	return New("test",
		MandatoryIE("EMM cause", ie.FormatV, &m.Cause),
		OptionalIE("timer", 0x5b, ie.FormatTV, &m.Timer),
		OptionalIE("timer 2", 0x5f, ie.FormatTLV, &m.TLV),
		OptionalIE("extended cause", 0xa0, ie.FormatTV1, &m.Ext),
	)
}

func TestCheckBuffer(t *testing.T) {
	require.ErrorIs(t, CheckBuffer(nil, 0), ie.ErrNullBuffer)
	require.ErrorIs(t, CheckBuffer(nil, 1), ie.ErrNullBuffer)
	require.ErrorIs(t, CheckBuffer([]byte{}, 1), ie.ErrBufferTooShort)
	require.NoError(t, CheckBuffer([]byte{0x00}, 1))
}

func TestSequenceEncode(t *testing.T) {
	t.Run("single mandatory cause", func(t *testing.T) {
		m := &testMsg{Cause: ie.EMMCause(3)}
		b := make([]byte, 10)

		n, err := m.sequence().Encode(b)
		require.NoError(t, err)
		require.Equal(t, 1, n)
		require.Equal(t, byte(3), b[0])
	})

	t.Run("zero length buffer", func(t *testing.T) {
		m := &testMsg{Cause: ie.EMMCause(3)}

		n, err := m.sequence().Encode([]byte{})
		require.ErrorIs(t, err, ie.ErrBufferTooShort)
		require.Zero(t, n)
	})

	t.Run("nil buffer", func(t *testing.T) {
		m := &testMsg{Cause: ie.EMMCause(3)}

		_, err := m.sequence().Encode(nil)
		require.ErrorIs(t, err, ie.ErrNullBuffer)
	})

	t.Run("all optionals present", func(t *testing.T) {
		m := &testMsg{
			Cause: ie.EMMCause(ie.CauseCongestion),
			Timer: ie.NewGPRSTimer(4 * time.Second),
			TLV:   ie.NewGPRSTimer2(time.Minute),
			Ext:   ie.NewExtendedEMMCause(ie.ExtCauseEUTRANNotAllowed),
		}
		s := m.sequence()
		require.Equal(t, 7, s.Len())

		b := make([]byte, s.Len())
		n, err := s.Encode(b)
		require.NoError(t, err)
		require.Equal(t, []byte{0x16, 0x5b, 0x02, 0x5f, 0x01, 0x21, 0xa1}, b[:n])
	})

	t.Run("optional overflows remaining capacity", func(t *testing.T) {
		m := &testMsg{Cause: ie.EMMCause(ie.CauseCongestion), TLV: ie.NewGPRSTimer2(time.Minute)}

		_, err := m.sequence().Encode(make([]byte, 3))
		require.ErrorIs(t, err, ie.ErrFieldEncodeOverflow)
	})
}

func TestSequenceDecode(t *testing.T) {
	t.Run("single mandatory cause", func(t *testing.T) {
		var m testMsg

		n, err := m.sequence().Decode([]byte{0x03})
		require.NoError(t, err)
		require.Equal(t, 1, n)
		require.Equal(t, ie.EMMCause(3), m.Cause)
		require.Nil(t, m.Timer)
		require.Nil(t, m.TLV)
		require.Nil(t, m.Ext)
	})

	t.Run("short buffer mutates nothing", func(t *testing.T) {
		m := testMsg{Cause: ie.EMMCause(9)}

		_, err := m.sequence().Decode([]byte{})
		require.ErrorIs(t, err, ie.ErrBufferTooShort)
		require.Equal(t, ie.EMMCause(9), m.Cause)
	})

	t.Run("nil buffer", func(t *testing.T) {
		var m testMsg

		_, err := m.sequence().Decode(nil)
		require.ErrorIs(t, err, ie.ErrNullBuffer)
	})

	t.Run("subset of optionals", func(t *testing.T) {
		var m testMsg

		n, err := m.sequence().Decode([]byte{0x16, 0x5f, 0x01, 0x21, 0xa4})
		require.NoError(t, err)
		require.Equal(t, 5, n)
		require.Nil(t, m.Timer)
		require.NotNil(t, m.TLV)
		require.Equal(t, ie.GPRSTimer{Unit: ie.TimerUnit1Minute, Value: 1}, m.TLV.GPRSTimer)
		require.NotNil(t, m.Ext)
		require.True(t, m.Ext.Has(ie.ExtCauseNBIoTNotAllowed))
	})

	t.Run("unknown trailing octets are not consumed", func(t *testing.T) {
		var m testMsg

		n, err := m.sequence().Decode([]byte{0x16, 0x5b, 0x02, 0x77, 0x01})
		require.NoError(t, err)
		require.Equal(t, 3, n)
		require.NotNil(t, m.Timer)
	})

	t.Run("out of order optional is left over", func(t *testing.T) {
		var m testMsg

		n, err := m.sequence().Decode([]byte{0x16, 0x5f, 0x01, 0x21, 0x5b, 0x02})
		require.NoError(t, err)
		require.Equal(t, 4, n)
		require.Nil(t, m.Timer)
	})

	t.Run("failing optional keeps earlier slots", func(t *testing.T) {
		var m testMsg

		_, err := m.sequence().Decode([]byte{0x16, 0x5b, 0x02, 0x5f, 0x01})
		require.ErrorIs(t, err, ie.ErrBufferTooShort)
		require.Equal(t, ie.EMMCause(0x16), m.Cause)
		require.NotNil(t, m.Timer)
		require.Nil(t, m.TLV)
	})
}

func TestErrorTransparency(t *testing.T) {
	boom := errors.New("boom")
	first := &fakeIE{n: 1}
	failing := &fakeIE{n: 1, err: boom}
	last := &fakeIE{n: 1}

	s := New("fake",
		MandatoryIE("first", ie.FormatV, first),
		MandatoryIE("failing", ie.FormatV, failing),
		MandatoryIE("last", ie.FormatV, last),
	)

	_, err := s.Decode(make([]byte, 3))
	require.True(t, err == boom, "got %v", err)
	require.Equal(t, 1, first.calls)
	require.Equal(t, 1, failing.calls)
	require.Zero(t, last.calls)

	_, err = s.Encode(make([]byte, 3))
	require.True(t, err == boom, "got %v", err)
	require.Zero(t, last.calls)
}

func TestMisbehavingIE(t *testing.T) {
	greedy := New("fake", MandatoryIE("greedy", ie.FormatV, &fakeIE{n: 4}))
	greedy.Slots[0].minLen = 1

	_, err := greedy.Decode(make([]byte, 2))
	require.ErrorIs(t, err, ie.ErrBufferTooShort)

	_, err = greedy.Encode(make([]byte, 2))
	require.ErrorIs(t, err, ie.ErrFieldEncodeOverflow)
}

func TestObserverVisitsEverySlot(t *testing.T) {
	m := &testMsg{
		Cause: ie.EMMCause(ie.CauseCongestion),
		TLV:   ie.NewGPRSTimer2(time.Minute),
	}

	var (
		visited []string
		cursor  int
	)
	observer := func(slot *Slot, offset, n int) {
		require.GreaterOrEqual(t, offset, cursor)
		require.GreaterOrEqual(t, n, 0)
		visited = append(visited, slot.Name)
		cursor = offset + n
	}

	b := make([]byte, 16)
	n, err := m.sequence().WithObserver(observer).Encode(b)
	require.NoError(t, err)
	require.Equal(t, 4, n)
	require.Equal(t, n, cursor)
	require.Equal(t, []string{"EMM cause", "timer", "timer 2", "extended cause"}, visited)

	visited, cursor = nil, 0

	var got testMsg
	consumed, err := got.sequence().WithObserver(observer).Decode(b[:n])
	require.NoError(t, err)
	require.Equal(t, n, consumed)
	require.LessOrEqual(t, cursor, n)
	require.Len(t, visited, 4)
}

func TestSequenceMinLen(t *testing.T) {
	m := &testMsg{}
	assert.Equal(t, 1, m.sequence().MinLen())

	s := New("two", MandatoryIE("a", ie.FormatV, &fakeIE{n: 2}), MandatoryIE("b", ie.FormatV, &fakeIE{n: 3}))
	assert.Equal(t, 5, s.MinLen())
}

func TestSequenceValidate(t *testing.T) {
	var (
		cause ie.EMMCause
		t1    *ie.GPRSTimer
		t2    *ie.GPRSTimer2
		ext   *ie.ExtendedEMMCause
	)

	tests := []struct {
		name    string
		slots   []Slot
		wantErr bool
	}{
		{
			name: "valid",
			slots: []Slot{
				MandatoryIE("cause", ie.FormatV, &cause),
				OptionalIE("t1", 0x5b, ie.FormatTV, &t1),
				OptionalIE("ext", 0xa0, ie.FormatTV1, &ext),
			},
		},
		{
			name: "mandatory after optional",
			slots: []Slot{
				OptionalIE("t1", 0x5b, ie.FormatTV, &t1),
				MandatoryIE("cause", ie.FormatV, &cause),
			},
			wantErr: true,
		},
		{
			name: "optional without IEI",
			slots: []Slot{
				OptionalIE("t1", 0, ie.FormatTV, &t1),
			},
			wantErr: true,
		},
		{
			name: "duplicate IEI",
			slots: []Slot{
				OptionalIE("t1", 0x5b, ie.FormatTV, &t1),
				OptionalIE("t2", 0x5b, ie.FormatTLV, &t2),
			},
			wantErr: true,
		},
		{
			name: "octet IEI shadowed by half octet IEI",
			slots: []Slot{
				OptionalIE("ext", 0xa0, ie.FormatTV1, &ext),
				OptionalIE("t2", 0xa5, ie.FormatTLV, &t2),
			},
			wantErr: true,
		},
		{
			name: "half octet IEI shadowing earlier octet IEI",
			slots: []Slot{
				OptionalIE("t2", 0xa5, ie.FormatTLV, &t2),
				OptionalIE("ext", 0xa0, ie.FormatTV1, &ext),
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.name, tt.slots...).Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidSequence)
				return
			}

			require.NoError(t, err)
		})
	}
}
