package player

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/llehouerou/alac"
	"github.com/llehouerou/go-faad2"
	"github.com/llehouerou/go-m4a"
)

const alacFrameSize = 4096

var errUnknownCodec = errors.New("m4a: unsupported codec")

// m4aStream reads an MP4 container and decodes its AAC or ALAC packets
// into stereo frames.
type m4aStream struct {
	box      *m4a.Reader
	closer   io.Closer
	codec    m4a.CodecType
	aac      *faad2.Decoder
	alac     *alac.Alac
	channels int
	bits     int
	total    int
	next     int // index of the next container sample
	pending  [][2]float64
	err      error
}

func decodeM4A(rc io.ReadSeekCloser) (beep.StreamSeekCloser, beep.Format, error) {
	box, err := m4a.Open(rc)
	if err != nil {
		return nil, beep.Format{}, err
	}
	rate := box.SampleRate()
	s := &m4aStream{
		box:      box,
		closer:   rc,
		codec:    box.Codec(),
		channels: int(box.Channels()),
		bits:     int(box.SampleSize()),
		total:    int(box.Duration().Seconds() * float64(rate)),
	}
	format := beep.Format{SampleRate: beep.SampleRate(rate), NumChannels: 2, Precision: 2}

	ctx := context.Background()
	switch s.codec {
	case m4a.CodecAAC:
		dec, err := faad2.NewDecoder(ctx)
		if err != nil {
			return nil, beep.Format{}, err
		}
		if err := dec.Init(ctx, box.CodecConfig()); err != nil {
			dec.Close(ctx)
			return nil, beep.Format{}, err
		}
		s.aac = dec
	case m4a.CodecALAC:
		dec, err := alac.NewWithConfig(alac.Config{
			SampleRate:  int(rate),
			SampleSize:  s.bits,
			NumChannels: s.channels,
			FrameSize:   alacFrameSize,
		})
		if err != nil {
			return nil, beep.Format{}, err
		}
		s.alac = dec
		if s.bits == 24 {
			format.Precision = 3
		}
	case m4a.CodecUnknown:
		return nil, beep.Format{}, errUnknownCodec
	}
	return s, format, nil
}

func (s *m4aStream) Stream(samples [][2]float64) (int, bool) {
	n := 0
	for n < len(samples) && s.err == nil {
		if len(s.pending) > 0 {
			c := copy(samples[n:], s.pending)
			s.pending = s.pending[c:]
			n += c
			continue
		}
		if s.next >= s.box.SampleCount() {
			break
		}
		packet, err := s.box.ReadSample(s.next)
		if err != nil {
			s.err = err
			break
		}
		s.next++
		s.pending, s.err = s.decodePacket(packet)
	}
	return n, n > 0
}

func (s *m4aStream) decodePacket(packet []byte) ([][2]float64, error) {
	switch s.codec {
	case m4a.CodecAAC:
		pcm, err := s.aac.Decode(context.Background(), packet)
		if err != nil {
			return nil, err
		}
		return interleaved16(pcm, s.channels), nil
	case m4a.CodecALAC:
		return alacFrames(s.alac.Decode(packet), s.bits, s.channels), nil
	case m4a.CodecUnknown:
	}
	return nil, errUnknownCodec
}

func (s *m4aStream) Err() error { return s.err }

func (s *m4aStream) Len() int { return s.total }

func (s *m4aStream) Position() int {
	return int(s.box.SampleTime(s.next).Seconds() * float64(s.box.SampleRate()))
}

func (s *m4aStream) Seek(p int) error {
	p = min(max(p, 0), s.total)
	at := time.Duration(float64(p) / float64(s.box.SampleRate()) * float64(time.Second))
	s.next = s.box.SeekToTime(at)
	s.pending = nil
	s.err = nil
	return nil
}

func (s *m4aStream) Close() error {
	if s.aac != nil {
		s.aac.Close(context.Background())
	}
	return s.closer.Close()
}

// interleaved16 converts interleaved int16 PCM to stereo frames.
// Mono is duplicated to both channels.
func interleaved16(pcm []int16, channels int) [][2]float64 {
	channels = max(channels, 1)
	frames := make([][2]float64, len(pcm)/channels)
	for i := range frames {
		l := float64(pcm[i*channels]) / 32768.0
		r := l
		if channels > 1 {
			r = float64(pcm[i*channels+1]) / 32768.0
		}
		frames[i] = [2]float64{l, r}
	}
	return frames
}

// alacFrames converts little-endian 16 or 24-bit PCM bytes to stereo frames.
func alacFrames(data []byte, bits, channels int) [][2]float64 {
	channels = max(channels, 1)
	width := 2
	scale := 32768.0
	if bits == 24 {
		width = 3
		scale = 8388608.0
	}
	stride := width * channels
	frames := make([][2]float64, len(data)/stride)
	for i := range frames {
		off := i * stride
		l := float64(pcmSigned(data[off:off+width])) / scale
		r := l
		if channels > 1 {
			r = float64(pcmSigned(data[off+width:off+2*width])) / scale
		}
		frames[i] = [2]float64{l, r}
	}
	return frames
}

// pcmSigned decodes a 2 or 3 byte little-endian signed sample.
func pcmSigned(b []byte) int32 {
	var v int32
	for i, x := range b {
		v |= int32(x) << (8 * i)
	}
	shift := 32 - 8*len(b)
	return v << shift >> shift
}
