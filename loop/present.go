// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package loop

import "golang.org/x/mobile/gl"

// Presenter ends the frame and hands it to the display.
type Presenter interface {
	Present()
}

// PresenterFunc adapts a function to Presenter.
type PresenterFunc func()

// Present calls fn.
func (fn PresenterFunc) Present() { fn() }

// FlushPresenter ends the frame with glFlush, for hosts that swap buffers
// themselves after the frame callback returns.
type FlushPresenter struct {
	GL gl.Context
}

// Present flushes the GL command stream.
func (p FlushPresenter) Present() {
	p.GL.Flush()
}
