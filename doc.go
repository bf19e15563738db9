// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package arcam renders the live camera feed of an AR session as the
// background of an OpenGL ES scene.
//
// # Overview
//
// An AR session keeps writing camera frames into a texture it owns. arcam
// samples that texture over the whole viewport with a single oversized
// triangle, clears depth behind it and leaves the frame ready for scene
// content drawn on top.
//
// # Quick Start
//
//	func main() {
//		cfg := arapp.DefaultConfig().WithTracking(camera.TrackingWorld)
//		arapp.Main(mySession, cfg)
//	}
//
// Hosts that own their GL context and frame callback use the pieces
// directly:
//
//	drawer, err := background.New(glctx)
//	if err != nil {
//		return err // *shader.CompileError or *shader.LinkError
//	}
//	driver := loop.New(glctx)
//	driver.AddLayer(drawer)
//
//	go func() {
//		tex, err := camera.Bind(ctx, session)
//		if err == nil {
//			drawer.Deliver(tex)
//		}
//	}()
//
//	driver.Start()
//	// on every host frame callback:
//	driver.Frame(loop.Millis(timestampMS))
//
// # Architecture
//
// The module is organized into:
//   - shader: compiles and links a program, resolves attribute and sampler locations
//   - geometry: the screen-fill triangle and its vertex buffer
//   - camera: session interfaces, texture handle wrapping and Bind with retry
//   - background: the drawer that samples the camera texture every frame
//   - loop: frame timing, clearing, layers and presentation
//   - hud: an optional diagnostics overlay
//   - arapp: x/mobile host integration
//   - camera/synthetic: a color-bar session for development
//
// # Logging
//
// arcam is silent by default. Use [SetLogger] to route its log records to a
// slog.Logger.
package arcam
