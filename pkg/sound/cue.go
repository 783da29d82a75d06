// Package sound 合成特效层使用的短音效
//
// 所有音效都是程序化生成的：振荡器或白噪声经过滤波器与增益包络，
// 不依赖任何音频资源文件。合成结果以 beep.Streamer 形式提供，
// 可以交给 speakerplayer 直接播放，也可以渲染成 PCM 字节交给 Ebitengine。
package sound

// Kind 音效类型
type Kind string

const (
	KindClick     Kind = "click"
	KindSuccess   Kind = "success"
	KindCollect   Kind = "collect"
	KindSoft      Kind = "soft"
	KindBreathIn  Kind = "breath-in"
	KindBreathOut Kind = "breath-out"
	KindDodge     Kind = "dodge"
	KindHit       Kind = "hit"
)

// Kinds 返回全部已知音效（按固定顺序）
func Kinds() []Kind {
	return []Kind{
		KindClick, KindSuccess, KindCollect, KindSoft,
		KindBreathIn, KindBreathOut, KindDodge, KindHit,
	}
}

// Player 音效触发能力
// 实现必须立即返回，播放失败只记录日志
type Player interface {
	PlaySound(kind Kind)
}

// NopPlayer 静音播放器
type NopPlayer struct{}

func (NopPlayer) PlaySound(Kind) {}

// RecordingPlayer 只记录触发顺序的播放器，用于测试与无头运行
type RecordingPlayer struct {
	Played []Kind
}

func (p *RecordingPlayer) PlaySound(kind Kind) {
	p.Played = append(p.Played, kind)
}

// Count 返回某种音效被触发的次数
func (p *RecordingPlayer) Count(kind Kind) int {
	n := 0
	for _, k := range p.Played {
		if k == kind {
			n++
		}
	}
	return n
}

// Known 判断音效类型是否存在
func Known(kind Kind) bool {
	_, ok := cues[kind]
	return ok
}
