package ledger

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type deviceStub struct {
	written [][]byte
	replies [][]byte
	closed  bool
}

func (stub *deviceStub) Write(report []byte) (int, error) {
	stub.written = append(stub.written, append([]byte{}, report...))
	return len(report), nil
}

func (stub *deviceStub) Read(buff []byte) (int, error) {
	if len(stub.replies) == 0 {
		return 0, io.EOF
	}

	n := copy(buff, stub.replies[0])
	stub.replies = stub.replies[1:]

	return n, nil
}

func (stub *deviceStub) Close() error {
	stub.closed = true
	return nil
}

// frameReply splits the reply into padded HID reports the way the device sends them
func frameReply(reply []byte) [][]byte {
	payload := binary.BigEndian.AppendUint16(nil, uint16(len(reply)))
	payload = append(payload, reply...)

	reports := make([][]byte, 0)
	for sequence := 0; len(payload) > 0; sequence++ {
		report := make([]byte, hidReportSize)
		copy(report, hidHeader)
		binary.BigEndian.PutUint16(report[3:5], uint16(sequence))
		n := copy(report[5:], payload)
		payload = payload[n:]
		reports = append(reports, report)
	}

	return reports
}

func createBytes(size int) []byte {
	buff := make([]byte, size)
	for i := range buff {
		buff[i] = byte(i)
	}

	return buff
}

func TestHidTransport_Exchange(t *testing.T) {
	t.Parallel()

	t.Run("apdu too large should error", func(t *testing.T) {
		t.Parallel()

		device := &deviceStub{}
		transport := newHIDTransport(device)

		response, err := transport.Exchange(make([]byte, maxAPDUSize+1))
		assert.Nil(t, response)
		assert.ErrorIs(t, err, ErrAPDUTooLarge)
		assert.Empty(t, device.written)
	})
	t.Run("should frame the apdu in sequenced reports", func(t *testing.T) {
		t.Parallel()

		apdu := createBytes(200)
		device := &deviceStub{
			replies: frameReply([]byte{0x90, 0x00}),
		}
		transport := newHIDTransport(device)

		_, err := transport.Exchange(apdu)
		require.Nil(t, err)

		// 2 length bytes + 200 apdu bytes in chunks of 59
		require.Equal(t, 4, len(device.written))
		reassembled := make([]byte, 0)
		for i, report := range device.written {
			assert.True(t, len(report) <= hidReportSize)
			assert.Equal(t, hidHeader, report[:3])
			assert.Equal(t, uint16(i), binary.BigEndian.Uint16(report[3:5]))
			reassembled = append(reassembled, report[5:]...)
		}
		assert.Equal(t, uint16(len(apdu)), binary.BigEndian.Uint16(reassembled[:2]))
		assert.Equal(t, apdu, reassembled[2:])
	})
	t.Run("should reassemble a multi report reply", func(t *testing.T) {
		t.Parallel()

		reply := append(createBytes(150), 0x90, 0x00)
		device := &deviceStub{
			replies: frameReply(reply),
		}
		transport := newHIDTransport(device)

		response, err := transport.Exchange([]byte{cla, insGetAddress, 0, 0, 0})
		require.Nil(t, err)
		assert.True(t, bytes.Equal(reply, response))
		assert.Empty(t, device.replies)
	})
	t.Run("invalid reply header should error", func(t *testing.T) {
		t.Parallel()

		reports := frameReply([]byte{0x90, 0x00})
		reports[0][2] = 0x02
		transport := newHIDTransport(&deviceStub{replies: reports})

		response, err := transport.Exchange([]byte{cla, insGetAddress, 0, 0, 0})
		assert.Nil(t, response)
		assert.Equal(t, ErrInvalidReplyHeader, err)
	})
	t.Run("out of order reply should error", func(t *testing.T) {
		t.Parallel()

		reports := frameReply(createBytes(100))
		reports[0], reports[1] = reports[1], reports[0]
		transport := newHIDTransport(&deviceStub{replies: reports})

		response, err := transport.Exchange([]byte{cla, insGetAddress, 0, 0, 0})
		assert.Nil(t, response)
		assert.Equal(t, ErrInvalidReplySequence, err)
	})
	t.Run("device read errors should error", func(t *testing.T) {
		t.Parallel()

		transport := newHIDTransport(&deviceStub{})

		response, err := transport.Exchange([]byte{cla, insGetAddress, 0, 0, 0})
		assert.Nil(t, response)
		assert.True(t, errors.Is(err, io.EOF))
	})
}

func TestHidTransport_Close(t *testing.T) {
	t.Parallel()

	device := &deviceStub{}
	transport := newHIDTransport(device)

	assert.Nil(t, transport.Close())
	assert.True(t, device.closed)
}
