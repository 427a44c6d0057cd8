package ledger

import (
	"encoding/binary"
	"fmt"

	"github.com/multiversx/mx-chain-core-go/data/transaction"
	"github.com/multiversx/mx-chain-core-go/marshal"
	"github.com/multiversx/mx-sdk-go/data"
)

const (
	cla = 0xED

	insGetAppConfiguration = 0x02
	insGetAddress          = 0x03
	insSignTransaction     = 0x04
	insSetAddress          = 0x05

	p1NoConfirm   = 0x00
	p1FirstChunk  = 0x00
	p1MoreChunks  = 0x80
	p2DisplayNone = 0x00

	signChunkSize = 150
	maxDataSize   = 0xff
)

const (
	swOK                   = 0x9000
	swUserDenied           = 0x6985
	swClaNotSupported      = 0x6e00
	swClaNotSupportedAlt   = 0x6e01
	swInsNotSupported      = 0x6d00
	swInsNotSupportedAlt   = 0x6d02
	swAppNotOpen           = 0x6511
	swDeviceLocked         = 0x5515
	swSecurityNotSatisfied = 0x6982
)

// AppConfiguration is the configuration reported by the MultiversX Ledger app
type AppConfiguration struct {
	ContractDataEnabled bool
	AccountIndex        uint32
	AddressIndex        uint32
	Version             string
}

type app struct {
	transport   Transport
	marshalizer marshal.Marshalizer
}

func newApp(transport Transport) *app {
	return &app{
		transport:   transport,
		marshalizer: &marshal.JsonMarshalizer{},
	}
}

// GetAppConfiguration reads the app settings and version
func (a *app) GetAppConfiguration() (*AppConfiguration, error) {
	response, err := a.exchange(insGetAppConfiguration, p1NoConfirm, p2DisplayNone, nil)
	if err != nil {
		return nil, err
	}
	if len(response) < 6 {
		return nil, fmt.Errorf("%w, app configuration has %d bytes", ErrInvalidResponse, len(response))
	}

	return &AppConfiguration{
		ContractDataEnabled: response[0] == 0x01,
		AccountIndex:        uint32(response[1]),
		AddressIndex:        uint32(response[2]),
		Version:             fmt.Sprintf("%d.%d.%d", response[3], response[4], response[5]),
	}, nil
}

// GetAddress returns the bech32 address derived on the device for the provided indexes
func (a *app) GetAddress(accountIndex uint32, addressIndex uint32) (string, error) {
	response, err := a.exchange(insGetAddress, p1NoConfirm, p2DisplayNone, indexesPayload(accountIndex, addressIndex))
	if err != nil {
		return "", err
	}
	if len(response) == 0 || len(response) < 1+int(response[0]) {
		return "", fmt.Errorf("%w, address response has %d bytes", ErrInvalidResponse, len(response))
	}

	address := string(response[1 : 1+int(response[0])])
	decoded, err := data.NewAddressFromBech32String(address)
	if err != nil || !decoded.IsValid() {
		return "", fmt.Errorf("%w, device returned the address %q", ErrInvalidResponse, address)
	}

	return address, nil
}

// SetAddress selects the account and address index used for signing
func (a *app) SetAddress(accountIndex uint32, addressIndex uint32) error {
	_, err := a.exchange(insSetAddress, p1NoConfirm, p2DisplayNone, indexesPayload(accountIndex, addressIndex))

	return err
}

// SignTransaction sends the JSON serialized unsigned transaction and returns the signature.
// The user has to confirm the transaction on the device
func (a *app) SignTransaction(tx *transaction.FrontendTransaction) ([]byte, error) {
	unsignedTx := *tx
	unsignedTx.Signature = ""

	message, err := a.marshalizer.Marshal(&unsignedTx)
	if err != nil {
		return nil, err
	}

	var response []byte
	p1 := byte(p1FirstChunk)
	for len(message) > 0 {
		chunkSize := signChunkSize
		if len(message) < chunkSize {
			chunkSize = len(message)
		}

		response, err = a.exchange(insSignTransaction, p1, p2DisplayNone, message[:chunkSize])
		if err != nil {
			return nil, err
		}

		message = message[chunkSize:]
		p1 = p1MoreChunks
	}

	if len(response) == 0 || len(response) < 1+int(response[0]) {
		return nil, fmt.Errorf("%w, signature response has %d bytes", ErrInvalidResponse, len(response))
	}

	return response[1 : 1+int(response[0])], nil
}

func (a *app) exchange(ins byte, p1 byte, p2 byte, payload []byte) ([]byte, error) {
	if len(payload) > maxDataSize {
		return nil, fmt.Errorf("%w, data size %d", ErrAPDUTooLarge, len(payload))
	}

	apdu := make([]byte, 0, 5+len(payload))
	apdu = append(apdu, cla, ins, p1, p2, byte(len(payload)))
	apdu = append(apdu, payload...)

	response, err := a.transport.Exchange(apdu)
	if err != nil {
		return nil, err
	}
	if len(response) < 2 {
		return nil, fmt.Errorf("%w, missing status word", ErrInvalidResponse)
	}

	statusWord := binary.BigEndian.Uint16(response[len(response)-2:])
	err = statusWordError(statusWord)
	if err != nil {
		return nil, fmt.Errorf("%w, instruction 0x%02x, status word 0x%04x", err, ins, statusWord)
	}

	return response[:len(response)-2], nil
}

func statusWordError(statusWord uint16) error {
	switch statusWord {
	case swOK:
		return nil
	case swUserDenied:
		return ErrUserDenied
	case swClaNotSupported, swClaNotSupportedAlt, swInsNotSupported, swInsNotSupportedAlt,
		swAppNotOpen, swDeviceLocked, swSecurityNotSatisfied:
		return ErrAppNotReady
	default:
		return ErrUnexpectedStatusWord
	}
}

func indexesPayload(accountIndex uint32, addressIndex uint32) []byte {
	payload := make([]byte, 8)
	binary.BigEndian.PutUint32(payload[:4], accountIndex)
	binary.BigEndian.PutUint32(payload[4:], addressIndex)

	return payload
}
