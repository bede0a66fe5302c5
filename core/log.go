// SPDX-License-Identifier: MIT

package core

import "github.com/plan-systems/klog"

// Logf emits an info line when the options are verbose.
func (o Options) Logf(format string, args ...interface{}) {
	if o.verbose {
		klog.Infof(format, args...)
	}
}

// Warnf emits a warning line when the options are verbose.
// Used for degenerate-but-valid topology (non-manifold edges), which is
// data, not an error.
func (o Options) Warnf(format string, args ...interface{}) {
	if o.verbose {
		klog.Warningf(format, args...)
	}
}
