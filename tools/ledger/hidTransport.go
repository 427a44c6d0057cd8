package ledger

import (
	"encoding/binary"
	"fmt"
	"io"
	"sync"

	"github.com/karalabe/hid"
)

const (
	ledgerVendorID = 0x2c97
	ledgerUsageID  = 0xffa0
	ledgerEndpoint = 0

	hidReportSize = 64
	maxAPDUSize   = 0xffff
)

// reports travel on channel 0x0101 with the APDU command tag
var hidHeader = []byte{0x01, 0x01, 0x05}

type hidTransport struct {
	mut    sync.Mutex
	device io.ReadWriteCloser
}

// OpenHIDTransport opens the first attached Ledger device
func OpenHIDTransport() (Transport, error) {
	if !hid.Supported() {
		return nil, ErrHIDNotSupported
	}

	infos, err := hid.Enumerate(ledgerVendorID, 0)
	if err != nil {
		return nil, err
	}

	for _, info := range infos {
		if info.UsagePage != ledgerUsageID && info.Interface != ledgerEndpoint {
			continue
		}

		device, errOpen := info.Open()
		if errOpen != nil {
			log.Debug("could not open ledger device", "path", info.Path, "error", errOpen)
			continue
		}

		log.Debug("opened ledger device", "product", info.Product, "path", info.Path)

		return newHIDTransport(device), nil
	}

	return nil, ErrDeviceNotFound
}

func newHIDTransport(device io.ReadWriteCloser) *hidTransport {
	return &hidTransport{
		device: device,
	}
}

// Exchange writes the APDU as a sequence of HID reports and reassembles the reply
func (ht *hidTransport) Exchange(apdu []byte) ([]byte, error) {
	if len(apdu) > maxAPDUSize {
		return nil, fmt.Errorf("%w, size %d", ErrAPDUTooLarge, len(apdu))
	}

	ht.mut.Lock()
	defer ht.mut.Unlock()

	err := ht.write(apdu)
	if err != nil {
		return nil, err
	}

	return ht.read()
}

func (ht *hidTransport) write(apdu []byte) error {
	payload := make([]byte, 2, 2+len(apdu))
	binary.BigEndian.PutUint16(payload, uint16(len(apdu)))
	payload = append(payload, apdu...)

	report := make([]byte, 0, hidReportSize)
	space := hidReportSize - len(hidHeader) - 2
	for sequence := 0; len(payload) > 0; sequence++ {
		report = append(report[:0], hidHeader...)
		report = binary.BigEndian.AppendUint16(report, uint16(sequence))

		chunkSize := space
		if len(payload) < chunkSize {
			chunkSize = len(payload)
		}
		report = append(report, payload[:chunkSize]...)
		payload = payload[chunkSize:]

		log.Trace("ledger hid write", "sequence", sequence, "size", len(report))
		_, err := ht.device.Write(report)
		if err != nil {
			return err
		}
	}

	return nil
}

func (ht *hidTransport) read() ([]byte, error) {
	report := make([]byte, hidReportSize)

	var reply []byte
	expectedLength := 0
	for sequence := 0; ; sequence++ {
		_, err := io.ReadFull(ht.device, report)
		if err != nil {
			return nil, err
		}
		if report[0] != hidHeader[0] || report[1] != hidHeader[1] || report[2] != hidHeader[2] {
			return nil, ErrInvalidReplyHeader
		}
		if int(binary.BigEndian.Uint16(report[3:5])) != sequence {
			return nil, ErrInvalidReplySequence
		}

		payload := report[5:]
		if sequence == 0 {
			expectedLength = int(binary.BigEndian.Uint16(payload[:2]))
			reply = make([]byte, 0, expectedLength)
			payload = payload[2:]
		}

		left := expectedLength - len(reply)
		if left <= len(payload) {
			reply = append(reply, payload[:left]...)
			return reply, nil
		}
		reply = append(reply, payload...)
	}
}

// Close closes the underlying HID device
func (ht *hidTransport) Close() error {
	ht.mut.Lock()
	defer ht.mut.Unlock()

	return ht.device.Close()
}
