package bigbuf

import (
	"fmt"
	"math/big"
	"time"

	"github.com/vekexasia/bigint-swissknife-sub000/internal/codec"
	"github.com/vekexasia/bigint-swissknife-sub000/internal/conv"
)

// Converter exposes the codec as an instance with its own logger, metrics
// collector and, optionally, a pinned backend. Most callers use the
// package-level functions, which share one default Converter; instances are
// for callers who want metrics, logging, or a fixed backend regardless of
// the process-wide selection.
//
// A Converter is immutable after construction and safe for concurrent use.
type Converter struct {
	codec   codec.Codec // nil: use the process-wide resolved backend
	logger  *Logger
	metrics MetricsCollector
}

// New creates a Converter.
func New(optFns ...Option) (*Converter, error) {
	o := applyOptions(optFns)

	var cc codec.Codec
	if o.backend != "" {
		b, ok := codec.ParseBackend(o.backend)
		if !ok {
			return nil, fmt.Errorf("%w: unknown backend %q", ErrInvalidArgument, o.backend)
		}
		if !codec.Available(b) {
			return nil, &UnavailableBackendError{Name: o.backend}
		}
		cc = codec.ByBackend(b)
		o.logger.Debug("backend pinned", "backend", cc.Name())
	}

	return &Converter{
		codec:   cc,
		logger:  o.logger,
		metrics: o.metricsCollector,
	}, nil
}

// std backs the package-level functions. Constructing without options cannot
// fail.
var std, _ = New()

func (c *Converter) active() codec.Codec {
	if c.codec != nil {
		return c.codec
	}
	return codec.Active()
}

// BackendName reports which backend this Converter encodes with. For an
// unpinned Converter this resolves (and reports) the process-wide backend.
func (c *Converter) BackendName() string {
	return c.active().Name()
}

// byteOrder selects between the two wire orders.
type byteOrder uint8

const (
	bigEndian byteOrder = iota
	littleEndian
)

// encode allocates a width-sized sequence and fills it. Unsigned and signed
// encodes share this path: non-negative values pass through the signed layer
// untouched, and negative values handed to the unsigned entry points encode
// as their two's-complement representative, matching the signed contract.
func (c *Converter) encode(value *big.Int, width int, order byteOrder) ([]byte, error) {
	if value == nil {
		return nil, fmt.Errorf("%w: nil value", ErrInvalidInput)
	}
	if _, err := conv.CheckWidth(width); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	dst := make([]byte, width)
	c.put(dst, value, order)
	return dst, nil
}

func (c *Converter) encodeInto(dst []byte, value *big.Int, order byteOrder) error {
	if value == nil {
		return fmt.Errorf("%w: nil value", ErrInvalidInput)
	}
	if dst == nil {
		return fmt.Errorf("%w: nil destination", ErrInvalidInput)
	}
	c.put(dst, value, order)
	return nil
}

func (c *Converter) put(dst []byte, value *big.Int, order byteOrder) {
	cc := c.active()
	if order == bigEndian {
		codec.PutIntBE(cc, dst, value)
	} else {
		codec.PutIntLE(cc, dst, value)
	}
}

func (c *Converter) decodeUnsigned(src []byte, order byteOrder) (*big.Int, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: nil byte sequence", ErrInvalidInput)
	}
	cc := c.active()
	if order == bigEndian {
		return cc.UintBE(src), nil
	}
	return cc.UintLE(src), nil
}

func (c *Converter) decodeSigned(src []byte, order byteOrder) (*big.Int, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: nil byte sequence", ErrInvalidInput)
	}
	cc := c.active()
	if order == bigEndian {
		return codec.IntBE(cc, src), nil
	}
	return codec.IntLE(cc, src), nil
}

// EncodeUnsignedBE encodes value into exactly width bytes, most significant
// byte first. Oversized magnitudes truncate to the low-order width bytes;
// undersized ones are zero-padded. Width 0 yields the empty sequence.
//
// Negative values encode as their two's-complement representative; callers
// who need rejection instead gate through AssertUnsignedInRange.
func (c *Converter) EncodeUnsignedBE(value *big.Int, width int) ([]byte, error) {
	start := time.Now()
	out, err := c.encode(value, width, bigEndian)
	c.metrics.RecordEncode(width, time.Since(start), err)
	return out, err
}

// EncodeUnsignedLE is EncodeUnsignedBE with the byte order reversed.
func (c *Converter) EncodeUnsignedLE(value *big.Int, width int) ([]byte, error) {
	start := time.Now()
	out, err := c.encode(value, width, littleEndian)
	c.metrics.RecordEncode(width, time.Since(start), err)
	return out, err
}

// EncodeSignedBE encodes value into exactly width bytes of big-endian two's
// complement: -1 in one byte is 0xFF, -128 is 0x80. Truncation and padding
// follow the same policy as the unsigned encoders.
func (c *Converter) EncodeSignedBE(value *big.Int, width int) ([]byte, error) {
	start := time.Now()
	out, err := c.encode(value, width, bigEndian)
	c.metrics.RecordEncode(width, time.Since(start), err)
	return out, err
}

// EncodeSignedLE is EncodeSignedBE with the byte order reversed.
func (c *Converter) EncodeSignedLE(value *big.Int, width int) ([]byte, error) {
	start := time.Now()
	out, err := c.encode(value, width, littleEndian)
	c.metrics.RecordEncode(width, time.Since(start), err)
	return out, err
}

// EncodeUnsignedBEInto writes value big-endian into dst, the width inferred
// from len(dst). A nil dst is rejected; an empty one is a no-op.
func (c *Converter) EncodeUnsignedBEInto(dst []byte, value *big.Int) error {
	start := time.Now()
	err := c.encodeInto(dst, value, bigEndian)
	c.metrics.RecordEncode(len(dst), time.Since(start), err)
	return err
}

// EncodeUnsignedLEInto writes value little-endian into dst.
func (c *Converter) EncodeUnsignedLEInto(dst []byte, value *big.Int) error {
	start := time.Now()
	err := c.encodeInto(dst, value, littleEndian)
	c.metrics.RecordEncode(len(dst), time.Since(start), err)
	return err
}

// EncodeSignedBEInto writes value as big-endian two's complement into dst.
func (c *Converter) EncodeSignedBEInto(dst []byte, value *big.Int) error {
	start := time.Now()
	err := c.encodeInto(dst, value, bigEndian)
	c.metrics.RecordEncode(len(dst), time.Since(start), err)
	return err
}

// EncodeSignedLEInto writes value as little-endian two's complement into dst.
func (c *Converter) EncodeSignedLEInto(dst []byte, value *big.Int) error {
	start := time.Now()
	err := c.encodeInto(dst, value, littleEndian)
	c.metrics.RecordEncode(len(dst), time.Since(start), err)
	return err
}

// DecodeUnsignedBE decodes a big-endian unsigned magnitude. The empty
// sequence decodes to 0; nil is rejected with ErrInvalidInput.
func (c *Converter) DecodeUnsignedBE(src []byte) (*big.Int, error) {
	start := time.Now()
	out, err := c.decodeUnsigned(src, bigEndian)
	c.metrics.RecordDecode(len(src), time.Since(start), err)
	return out, err
}

// DecodeUnsignedLE decodes a little-endian unsigned magnitude.
func (c *Converter) DecodeUnsignedLE(src []byte) (*big.Int, error) {
	start := time.Now()
	out, err := c.decodeUnsigned(src, littleEndian)
	c.metrics.RecordDecode(len(src), time.Since(start), err)
	return out, err
}

// DecodeSignedBE decodes big-endian two's complement: values at or above
// 2^(8·len-1) come back negative. The empty sequence decodes to 0.
func (c *Converter) DecodeSignedBE(src []byte) (*big.Int, error) {
	start := time.Now()
	out, err := c.decodeSigned(src, bigEndian)
	c.metrics.RecordDecode(len(src), time.Since(start), err)
	return out, err
}

// DecodeSignedLE decodes little-endian two's complement.
func (c *Converter) DecodeSignedLE(src []byte) (*big.Int, error) {
	start := time.Now()
	out, err := c.decodeSigned(src, littleEndian)
	c.metrics.RecordDecode(len(src), time.Since(start), err)
	return out, err
}

// EncodeUnsignedBE encodes value into exactly width big-endian bytes using
// the process-wide backend. See Converter.EncodeUnsignedBE.
func EncodeUnsignedBE(value *big.Int, width int) ([]byte, error) {
	return std.EncodeUnsignedBE(value, width)
}

// EncodeUnsignedLE encodes value into exactly width little-endian bytes.
func EncodeUnsignedLE(value *big.Int, width int) ([]byte, error) {
	return std.EncodeUnsignedLE(value, width)
}

// EncodeSignedBE encodes value as width bytes of big-endian two's complement.
func EncodeSignedBE(value *big.Int, width int) ([]byte, error) {
	return std.EncodeSignedBE(value, width)
}

// EncodeSignedLE encodes value as width bytes of little-endian two's
// complement.
func EncodeSignedLE(value *big.Int, width int) ([]byte, error) {
	return std.EncodeSignedLE(value, width)
}

// EncodeUnsignedBEInto writes value big-endian into dst, the width inferred
// from len(dst).
func EncodeUnsignedBEInto(dst []byte, value *big.Int) error {
	return std.EncodeUnsignedBEInto(dst, value)
}

// EncodeUnsignedLEInto writes value little-endian into dst.
func EncodeUnsignedLEInto(dst []byte, value *big.Int) error {
	return std.EncodeUnsignedLEInto(dst, value)
}

// EncodeSignedBEInto writes value as big-endian two's complement into dst.
func EncodeSignedBEInto(dst []byte, value *big.Int) error {
	return std.EncodeSignedBEInto(dst, value)
}

// EncodeSignedLEInto writes value as little-endian two's complement into dst.
func EncodeSignedLEInto(dst []byte, value *big.Int) error {
	return std.EncodeSignedLEInto(dst, value)
}

// DecodeUnsignedBE decodes a big-endian unsigned magnitude.
func DecodeUnsignedBE(src []byte) (*big.Int, error) {
	return std.DecodeUnsignedBE(src)
}

// DecodeUnsignedLE decodes a little-endian unsigned magnitude.
func DecodeUnsignedLE(src []byte) (*big.Int, error) {
	return std.DecodeUnsignedLE(src)
}

// DecodeSignedBE decodes big-endian two's complement.
func DecodeSignedBE(src []byte) (*big.Int, error) {
	return std.DecodeSignedBE(src)
}

// DecodeSignedLE decodes little-endian two's complement.
func DecodeSignedLE(src []byte) (*big.Int, error) {
	return std.DecodeSignedLE(src)
}
