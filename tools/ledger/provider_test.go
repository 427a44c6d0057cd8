package ledger

import (
	"context"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-core-go/data/transaction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ledgerAddress = "erd1qyu5wthldzr8wx5c9ucg8kjagg0jfs53s8nr3zpz3hypefsdd8ssycr6th"

// createLedgerTransport emulates a ready device with the MultiversX app open
func createLedgerTransport(contractDataEnabled bool, signature []byte) *transportStub {
	contractData := byte(0x00)
	if contractDataEnabled {
		contractData = 0x01
	}

	return &transportStub{
		ExchangeCalled: func(apdu []byte) ([]byte, error) {
			switch apdu[1] {
			case insGetAppConfiguration:
				return withStatusWord([]byte{contractData, 0, 0, 1, 0, 22}), nil
			case insGetAddress:
				return withStatusWord(append([]byte{byte(len(ledgerAddress))}, ledgerAddress...)), nil
			case insSignTransaction:
				return withStatusWord(append([]byte{byte(len(signature))}, signature...)), nil
			default:
				return withStatusWord(nil), nil
			}
		},
	}
}

func createMockArgsProvider(transport Transport) ArgsProvider {
	return ArgsProvider{
		OpenTransport: func() (Transport, error) {
			return transport, nil
		},
		AccountIndex: 0,
		AddressIndex: 0,
	}
}

func createLoggedInProvider(t *testing.T, contractDataEnabled bool, signature []byte) *provider {
	p, err := NewProvider(createMockArgsProvider(createLedgerTransport(contractDataEnabled, signature)))
	require.Nil(t, err)

	ready, err := p.Init(context.Background())
	require.Nil(t, err)
	require.True(t, ready)

	_, err = p.Login(context.Background())
	require.Nil(t, err)

	return p
}

func TestNewProvider(t *testing.T) {
	t.Parallel()

	t.Run("nil open transport handler should error", func(t *testing.T) {
		t.Parallel()

		p, err := NewProvider(ArgsProvider{})
		assert.True(t, check.IfNil(p))
		assert.Equal(t, ErrNilOpenTransportHandler, err)
	})
	t.Run("should work", func(t *testing.T) {
		t.Parallel()

		p, err := NewProvider(createMockArgsProvider(&transportStub{}))
		assert.False(t, check.IfNil(p))
		assert.Nil(t, err)
	})
}

func TestProvider_Init(t *testing.T) {
	t.Parallel()

	t.Run("no device should not be ready", func(t *testing.T) {
		t.Parallel()

		p, _ := NewProvider(ArgsProvider{
			OpenTransport: func() (Transport, error) {
				return nil, ErrDeviceNotFound
			},
		})

		ready, err := p.Init(context.Background())
		assert.False(t, ready)
		assert.Nil(t, err)
	})
	t.Run("open errors should error", func(t *testing.T) {
		t.Parallel()

		p, _ := NewProvider(ArgsProvider{
			OpenTransport: func() (Transport, error) {
				return nil, ErrHIDNotSupported
			},
		})

		ready, err := p.Init(context.Background())
		assert.False(t, ready)
		assert.Equal(t, ErrHIDNotSupported, err)
	})
	t.Run("app not open should not be ready and should release the device", func(t *testing.T) {
		t.Parallel()

		closed := false
		transport := &transportStub{
			ExchangeCalled: func(apdu []byte) ([]byte, error) {
				return []byte{0x6e, 0x01}, nil
			},
			CloseCalled: func() error {
				closed = true
				return nil
			},
		}
		p, _ := NewProvider(createMockArgsProvider(transport))

		ready, err := p.Init(context.Background())
		assert.False(t, ready)
		assert.Nil(t, err)
		assert.True(t, closed)

		address, err := p.Login(context.Background())
		assert.Empty(t, address)
		assert.Equal(t, ErrNotInitialized, err)
	})
	t.Run("unexpected device errors should error", func(t *testing.T) {
		t.Parallel()

		expectedErr := errors.New("expected error")
		p, _ := NewProvider(createMockArgsProvider(&transportStub{
			ExchangeCalled: func(apdu []byte) ([]byte, error) {
				return nil, expectedErr
			},
		}))

		ready, err := p.Init(context.Background())
		assert.False(t, ready)
		assert.Equal(t, expectedErr, err)
	})
	t.Run("canceled context should error", func(t *testing.T) {
		t.Parallel()

		p, _ := NewProvider(createMockArgsProvider(createLedgerTransport(true, nil)))
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		ready, err := p.Init(ctx)
		assert.False(t, ready)
		assert.Equal(t, context.Canceled, err)
	})
	t.Run("should work", func(t *testing.T) {
		t.Parallel()

		p, _ := NewProvider(createMockArgsProvider(createLedgerTransport(true, nil)))

		ready, err := p.Init(context.Background())
		assert.True(t, ready)
		assert.Nil(t, err)
	})
}

func TestProvider_Login(t *testing.T) {
	t.Parallel()

	t.Run("should select the configured indexes and return the address", func(t *testing.T) {
		t.Parallel()

		instructions := make([]byte, 0)
		transport := createLedgerTransport(true, nil)
		exchange := transport.ExchangeCalled
		transport.ExchangeCalled = func(apdu []byte) ([]byte, error) {
			instructions = append(instructions, apdu[1])
			if apdu[1] == insSetAddress || apdu[1] == insGetAddress {
				assert.Equal(t, []byte{0, 0, 0, 1, 0, 0, 0, 4}, apdu[5:])
			}
			return exchange(apdu)
		}
		args := createMockArgsProvider(transport)
		args.AccountIndex = 1
		args.AddressIndex = 4
		p, _ := NewProvider(args)

		_, _ = p.Init(context.Background())
		address, err := p.Login(context.Background())
		require.Nil(t, err)
		assert.Equal(t, ledgerAddress, address)
		assert.Equal(t, []byte{insGetAppConfiguration, insSetAddress, insGetAddress}, instructions)
	})
}

func TestProvider_SignTransaction(t *testing.T) {
	t.Parallel()

	signature := createBytes(64)

	t.Run("nil transaction should error", func(t *testing.T) {
		t.Parallel()

		p := createLoggedInProvider(t, true, signature)

		err := p.SignTransaction(context.Background(), nil)
		assert.Equal(t, ErrNilTransaction, err)
	})
	t.Run("not logged in should error", func(t *testing.T) {
		t.Parallel()

		p, _ := NewProvider(createMockArgsProvider(createLedgerTransport(true, signature)))
		_, _ = p.Init(context.Background())

		err := p.SignTransaction(context.Background(), &transaction.FrontendTransaction{Sender: ledgerAddress})
		assert.Equal(t, ErrNotLoggedIn, err)
	})
	t.Run("different sender should error", func(t *testing.T) {
		t.Parallel()

		p := createLoggedInProvider(t, true, signature)

		err := p.SignTransaction(context.Background(), &transaction.FrontendTransaction{
			Sender: "erd1spyavw0956vq68xj8y4tenjpq2wd5a9p2c6j8gsz7ztyrnpxrruqzu66jx",
		})
		assert.ErrorIs(t, err, ErrSenderMismatch)
	})
	t.Run("contract data disabled should error for data transactions", func(t *testing.T) {
		t.Parallel()

		p := createLoggedInProvider(t, false, signature)

		err := p.SignTransaction(context.Background(), &transaction.FrontendTransaction{
			Sender: ledgerAddress,
			Data:   []byte("claim@07"),
		})
		assert.Equal(t, ErrContractDataDisabled, err)
	})
	t.Run("should set the signature", func(t *testing.T) {
		t.Parallel()

		p := createLoggedInProvider(t, true, signature)
		tx := &transaction.FrontendTransaction{
			Sender: ledgerAddress,
			Data:   []byte("claim@07"),
		}

		err := p.SignTransaction(context.Background(), tx)
		require.Nil(t, err)
		assert.Equal(t, hex.EncodeToString(signature), tx.Signature)
	})
	t.Run("closed provider should error", func(t *testing.T) {
		t.Parallel()

		p := createLoggedInProvider(t, true, signature)
		require.Nil(t, p.Close())

		err := p.SignTransaction(context.Background(), &transaction.FrontendTransaction{Sender: ledgerAddress})
		assert.Equal(t, ErrNotInitialized, err)
	})
}
