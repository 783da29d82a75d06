package sound

import (
	"encoding/binary"
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// DefaultSampleRate 合成与播放使用的采样率
const DefaultSampleRate = beep.SampleRate(48000)

// waveform 振荡器波形
type waveform int

const (
	waveSine waveform = iota
	waveSawtooth
	waveNoise
)

// filterKind 滤波器类型
type filterKind int

const (
	filterLowPass filterKind = iota
	filterBandPass
)

// rampKind 包络段的插值方式
type rampKind int

const (
	rampLinear rampKind = iota
	rampExponential
)

// point 包络上的一个目标点：在 At 秒时到达 Value
type point struct {
	At    float64
	Value float64
	Ramp  rampKind
}

// envelope 分段包络，第一个点为起始值（At 通常为 0）
// 最后一个点之后保持该值
type envelope []point

// at 计算 t 秒时的包络值
func (e envelope) at(t float64) float64 {
	if len(e) == 0 {
		return 0
	}
	if t <= e[0].At {
		return e[0].Value
	}
	for i := 1; i < len(e); i++ {
		prev, next := e[i-1], e[i]
		if t > next.At {
			continue
		}
		span := next.At - prev.At
		if span <= 0 {
			return next.Value
		}
		k := (t - prev.At) / span
		if next.Ramp == rampExponential && prev.Value > 0 && next.Value > 0 {
			return prev.Value * math.Pow(next.Value/prev.Value, k)
		}
		return prev.Value + (next.Value-prev.Value)*k
	}
	return e[len(e)-1].Value
}

// constant 恒定值包络
func constant(v float64) envelope {
	return envelope{{At: 0, Value: v}}
}

// cueSpec 一个音效的合成参数
type cueSpec struct {
	wave       waveform
	freq       envelope // 振荡器频率（Hz），噪声时忽略
	gain       envelope
	filter     filterKind
	filterFreq envelope
	q          float64
	duration   float64 // 秒
}

// cues 音效目录
var cues = map[Kind]cueSpec{
	KindClick: {
		wave:       waveSine,
		freq:       constant(600),
		gain:       envelope{{0, 0.1, rampLinear}, {0.1, 0.01, rampExponential}},
		filterFreq: constant(800),
		duration:   0.1,
	},
	KindSuccess: {
		wave:       waveSine,
		freq:       envelope{{0, 440, rampLinear}, {0.15, 880, rampExponential}},
		gain:       envelope{{0, 0.08, rampLinear}, {0.3, 0.01, rampExponential}},
		filterFreq: constant(800),
		duration:   0.3,
	},
	KindCollect: {
		wave:       waveSine,
		freq:       envelope{{0, 523, rampLinear}, {0.08, 784, rampExponential}},
		gain:       envelope{{0, 0.06, rampLinear}, {0.15, 0.01, rampExponential}},
		filterFreq: constant(800),
		duration:   0.15,
	},
	KindSoft: {
		wave:       waveSine,
		freq:       constant(300),
		gain:       envelope{{0, 0.05, rampLinear}, {0.2, 0.01, rampExponential}},
		filterFreq: constant(400),
		duration:   0.2,
	},
	KindBreathIn: {
		wave:       waveSine,
		freq:       envelope{{0, 200, rampLinear}, {1, 280, rampLinear}},
		gain:       envelope{{0, 0.01, rampLinear}, {1, 0.04, rampLinear}, {1.2, 0.01, rampLinear}},
		filterFreq: constant(300),
		duration:   1.2,
	},
	KindBreathOut: {
		wave:       waveSine,
		freq:       envelope{{0, 280, rampLinear}, {1.5, 180, rampLinear}},
		gain:       envelope{{0, 0.04, rampLinear}, {1.5, 0.01, rampLinear}},
		filterFreq: constant(350),
		duration:   1.5,
	},
	KindDodge: {
		wave: waveNoise,
		gain: envelope{
			{0, 0, rampLinear},
			{0.1, 0.15, rampLinear},
			{0.2, 0.12, rampLinear},
			{0.35, 0.001, rampExponential},
		},
		filter:     filterBandPass,
		filterFreq: envelope{{0, 2500, rampLinear}, {0.35, 800, rampExponential}},
		q:          0.8,
		duration:   0.35,
	},
	KindHit: {
		wave:       waveSawtooth,
		freq:       envelope{{0, 80, rampLinear}, {0.15, 40, rampExponential}},
		gain:       envelope{{0, 0.15, rampLinear}, {0.25, 0.01, rampExponential}},
		filterFreq: constant(200),
		duration:   0.25,
	},
}

// Duration 返回音效时长
func Duration(kind Kind) time.Duration {
	spec, ok := cues[kind]
	if !ok {
		return 0
	}
	return time.Duration(spec.duration * float64(time.Second))
}

// biquad RBJ 二阶滤波器，系数随截止频率逐样本更新
type biquad struct {
	x1, x2, y1, y2 float64
}

func (b *biquad) process(kind filterKind, x, freq, q, sr float64) float64 {
	if q <= 0 {
		q = math.Sqrt2 / 2
	}
	freq = math.Min(math.Max(freq, 1), sr/2-1)
	w0 := 2 * math.Pi * freq / sr
	alpha := math.Sin(w0) / (2 * q)
	cosw := math.Cos(w0)

	var b0, b1, b2 float64
	switch kind {
	case filterBandPass:
		b0, b1, b2 = alpha, 0, -alpha
	default:
		b0 = (1 - cosw) / 2
		b1 = 1 - cosw
		b2 = (1 - cosw) / 2
	}
	a0 := 1 + alpha
	a1 := -2 * cosw
	a2 := 1 - alpha

	y := (b0*x + b1*b.x1 + b2*b.x2 - a1*b.y1 - a2*b.y2) / a0
	b.x2, b.x1 = b.x1, x
	b.y2, b.y1 = b.y1, y
	return y
}

// cueStreamer 逐样本合成一个音效
type cueStreamer struct {
	spec   cueSpec
	sr     float64
	pos    int
	total  int
	phase  float64
	filter biquad
	rng    *rand.Rand
}

// NewCue 创建音效的 beep.Streamer；未知类型返回 false
func NewCue(kind Kind, sr beep.SampleRate) (beep.Streamer, bool) {
	spec, ok := cues[kind]
	if !ok {
		return nil, false
	}
	return &cueStreamer{
		spec:  spec,
		sr:    float64(sr),
		total: sr.N(time.Duration(spec.duration * float64(time.Second))),
		rng:   rand.New(rand.NewSource(int64(len(kind)))),
	}, true
}

func (s *cueStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= s.total {
		return 0, false
	}
	for i := range samples {
		if s.pos >= s.total {
			return i, true
		}
		t := float64(s.pos) / s.sr

		var raw float64
		switch s.spec.wave {
		case waveNoise:
			raw = s.rng.Float64()*2 - 1
		case waveSawtooth:
			raw = 2*s.phase - 1
		default:
			raw = math.Sin(2 * math.Pi * s.phase)
		}
		if s.spec.wave != waveNoise {
			s.phase += s.spec.freq.at(t) / s.sr
			s.phase -= math.Floor(s.phase)
		}

		filtered := s.filter.process(s.spec.filter, raw, s.spec.filterFreq.at(t), s.spec.q, s.sr)
		sample := filtered * s.spec.gain.at(t)

		samples[i][0] = sample
		samples[i][1] = sample
		s.pos++
	}
	return len(samples), true
}

func (s *cueStreamer) Err() error {
	return nil
}

// WithVolume 套用主音量（0-1），0 时静音
func WithVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(math.Min(vol, 1)), Silent: false}
}

// Render 把音效渲染为 16 位小端立体声 PCM
// 未知类型返回 nil
func Render(kind Kind, sampleRate int, volume float64) []byte {
	sr := beep.SampleRate(sampleRate)
	cue, ok := NewCue(kind, sr)
	if !ok {
		return nil
	}
	streamer := WithVolume(cue, volume)

	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := streamer.Stream(buf)
		for _, frame := range buf[:n] {
			for _, v := range frame {
				v = math.Max(-1, math.Min(1, v))
				out = binary.LittleEndian.AppendUint16(out, uint16(int16(v*math.MaxInt16)))
			}
		}
		if !ok || n < len(buf) {
			break
		}
	}
	return out
}
