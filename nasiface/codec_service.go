// SPDX-License-Identifier: Apache-2.0
// Copyright 2024-present Open Networking Foundation

package nasiface

import (
	"sort"

	"github.com/ettle/strcase"

	"github.com/omec-project/emm-codec/logger"
	"github.com/omec-project/emm-codec/metrics"
	"github.com/omec-project/emm-codec/nas/codec"
	"github.com/omec-project/emm-codec/nas/ie"
	"github.com/omec-project/emm-codec/nas/message"
)

// messageFactories lists the messages served, keyed by kebab-case message name.
var messageFactories = func() map[string]func() message.Message {
	factories := map[string]func() message.Message{}

	for _, f := range []func() message.Message{
		func() message.Message { return &message.ServiceReject{} },
		func() message.Message { return &message.TrackingAreaUpdateReject{} },
		func() message.Message { return &message.AttachReject{} },
	} {
		factories[strcase.ToKebab(f().MessageTypeName())] = f
	}

	return factories
}()

// CodecService encodes and decodes EMM messages with logging and metrics around
// the plain codecs.
type CodecService struct {
	maxMessageSize int
	metrics        metrics.InstrumentNAS
}

// NewCodecService validates the slot table of every served message. m may be nil.
func NewCodecService(conf *Conf, m metrics.InstrumentNAS) (*CodecService, error) {
	for name, f := range messageFactories {
		if err := f().Sequence().Validate(); err != nil {
			logger.InitLog.Errorf("message %s has an invalid IE sequence: %v", name, err)
			return nil, err
		}
	}

	return &CodecService{
		maxMessageSize: conf.MaxMessageSize,
		metrics:        m,
	}, nil
}

// Messages returns the names of the served messages in sorted order.
func (c *CodecService) Messages() []string {
	names := make([]string, 0, len(messageFactories))
	for name := range messageFactories {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// New returns an empty message for name.
func (c *CodecService) New(name string) (message.Message, error) {
	f, ok := messageFactories[name]
	if !ok {
		return nil, ErrNotFoundWithParam("message", "name", name)
	}

	return f(), nil
}

// Encode encodes m into a buffer of at most the configured message size.
func (c *CodecService) Encode(m message.Message) ([]byte, error) {
	rec := metrics.NewMessage(m.MessageTypeName(), metrics.DirectionEncode)
	b := make([]byte, c.maxMessageSize)

	n, err := m.Sequence().WithObserver(traceSlot(m, metrics.DirectionEncode)).Encode(b)
	c.finish(rec, n, err)

	if err != nil {
		logger.CodecLog.With("message", m.MessageTypeName()).Warnln("encode failed:", err)
		return nil, err
	}

	return b[:n], nil
}

// Decode decodes b as the message called name. It returns the message and the
// number of bytes consumed.
func (c *CodecService) Decode(name string, b []byte) (message.Message, int, error) {
	m, err := c.New(name)
	if err != nil {
		return nil, 0, err
	}

	if len(b) > c.maxMessageSize {
		return nil, 0, ErrInvalidArgumentWithReason("length", len(b), "exceeds max message size")
	}

	rec := metrics.NewMessage(m.MessageTypeName(), metrics.DirectionDecode)

	n, err := m.Sequence().WithObserver(traceSlot(m, metrics.DirectionDecode)).Decode(b)
	c.finish(rec, n, err)

	if err != nil {
		logger.CodecLog.With("message", m.MessageTypeName()).Warnln("decode failed:", err)
		return nil, 0, err
	}

	if n < len(b) {
		logger.CodecLog.With("message", m.MessageTypeName()).Debugf("%d trailing bytes not consumed", len(b)-n)
	}

	return m, n, nil
}

func (c *CodecService) finish(rec *metrics.Message, n int, err error) {
	if c.metrics == nil {
		return
	}

	rec.Finish(resultLabel(err), n)
	c.metrics.SaveMessages(rec)
}

func resultLabel(err error) string {
	if err == nil {
		return metrics.ResultSuccess
	}

	if kind := ie.Kind(err); kind != nil {
		return kind.Error()
	}

	return "error"
}

func traceSlot(m message.Message, direction string) codec.Observer {
	return func(slot *codec.Slot, offset, n int) {
		logger.CodecLog.Debugf("%s %s: %v offset=%d len=%d", direction, m.MessageTypeName(), slot, offset, n)
	}
}
