// Package web runs the sketch on Ebitengine. The same game runs in a desktop
// window and, built with GOOS=js GOARCH=wasm, on a browser canvas whose size
// is negotiated with the page.
package web
