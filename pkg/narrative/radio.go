package narrative

import (
	"context"
	"log"
	"sync"

	"github.com/decker502/timetrain/pkg/config"
	"github.com/decker502/timetrain/pkg/game"
	"github.com/decker502/timetrain/pkg/types"
)

type reply struct {
	generation uint64
	text       string
}

// Radio 电台状态：当前台词与是否正在接收
//
// 除 worker goroutine 外，所有方法都只能在帧循环所在 goroutine 调用。
// 每个请求携带递增的代号，只有最新代号的回复会被显示；
// 回到 START 会使所有未完成的请求作废。
type Radio struct {
	commentator Commentator
	cfg         *config.NarrativeConfig

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	replies    chan reply
	generation uint64
	message    string
	loading    bool
}

// NewRadio 创建电台，初始显示开始台词
func NewRadio(parent context.Context, commentator Commentator, cfg *config.NarrativeConfig) *Radio {
	ctx, cancel := context.WithCancel(parent)
	return &Radio{
		commentator: commentator,
		cfg:         cfg,
		ctx:         ctx,
		cancel:      cancel,
		replies:     make(chan reply, 4),
		message:     cfg.StartMessage,
	}
}

// OnTransition 状态机监听器：回到开始时重置台词，进入结局时请求解说
func (r *Radio) OnTransition(from, to types.Phase, ev game.Event) {
	switch {
	case to == types.PhaseStart:
		r.generation++
		r.loading = false
		r.message = r.cfg.StartMessage
	case to.IsOutcome():
		r.Request(to, ev.Speed)
	}
}

// Request 发起一次解说请求（不阻塞）
func (r *Radio) Request(phase types.Phase, speed float64) {
	r.generation++
	r.loading = true
	gen := r.generation

	log.Printf("[Radio] Requesting commentary #%d for %s at %.1f MPH", gen, phase, speed)

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		text := r.commentator.Commentary(r.ctx, phase, speed)
		select {
		case r.replies <- reply{generation: gen, text: text}:
		case <-r.ctx.Done():
		}
	}()
}

// Update 非阻塞地接收已完成的回复，每帧调用一次
func (r *Radio) Update() {
	for {
		select {
		case rep := <-r.replies:
			if rep.generation != r.generation {
				log.Printf("[Radio] Dropping stale reply #%d (current #%d)", rep.generation, r.generation)
				continue
			}
			r.message = rep.text
			r.loading = false
		default:
			return
		}
	}
}

// Message 当前显示的台词
func (r *Radio) Message() string {
	return r.message
}

// Loading 是否有未完成的最新请求
func (r *Radio) Loading() bool {
	return r.loading
}

// Close 取消未完成的请求并等待 worker 退出
func (r *Radio) Close() {
	r.cancel()
	r.wg.Wait()
}
