// SPDX-License-Identifier: Unlicense OR MIT

// Package dom binds a widget.ScrollView to a scrollable element of
// the browser document model. It is only available on js/wasm.
package dom
