// internal/app/scheduler.go
package app

import (
	"context"
	"errors"
	"time"
)

// ErrTickerClosed: источник кадров закрылся раньше конца забега.
var ErrTickerClosed = errors.New("frame ticker closed")

// FrameDriver крутит сессию по внешнему тику. Единственная точка ожидания -
// выбор между тиком и ctx.Done(); ввод (и пауза) снимается сразу после тика.
type FrameDriver struct {
	Session *Session
	OnFrame func(FrameResult) // необязательный
}

// Run работает до конца забега. Отмена ctx засчитывается как выход из
// паузы: прогресс сохраняется, рекорд нет.
func (d *FrameDriver) Run(ctx context.Context, tick <-chan time.Time, input func() Input) (Outcome, error) {
	for {
		select {
		case <-ctx.Done():
			return d.Session.Quit(), ctx.Err()
		case _, ok := <-tick:
			if !ok {
				return d.Session.Quit(), ErrTickerClosed
			}
		}

		res := d.Session.Step(input())
		if d.OnFrame != nil {
			d.OnFrame(res)
		}
		if res.Outcome != nil {
			return *res.Outcome, nil
		}
	}
}
