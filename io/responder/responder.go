// SPDX-License-Identifier: Unlicense OR MIT

/*
Package responder implements the shared current-responder slot of a UI
tree. At most one claimant holds the slot at any instant; every change
of ownership goes through a claim or termination round, so an owner is
always notified before it loses the slot.

A Registry must only be used from the host event loop; the loop
serializes dispatch, so no locking is required.
*/
package responder

// Claimant is the identity of a widget competing for the responder
// slot, together with its arbitration policy.
type Claimant interface {
	// AllowTermination reports whether the claimant is willing to
	// yield the slot to a competitor.
	AllowTermination() bool
	// Terminated notifies the claimant that it lost the slot after
	// a granted termination round.
	Terminated()
}

// Registry holds the responder slot for one UI tree.
type Registry struct {
	owner Claimant
}

// Owner returns the current responder, or nil.
func (r *Registry) Owner() Claimant {
	return r.owner
}

// TryClaim requests the slot for c. The claim is granted if the slot
// is free or already held by c. Otherwise the current owner is asked
// to yield; if it allows termination it is notified and c takes the
// slot.
func (r *Registry) TryClaim(c Claimant) bool {
	if r.owner == nil || r.owner == c {
		r.owner = c
		return true
	}
	if !r.owner.AllowTermination() {
		return false
	}
	prev := r.owner
	r.owner = c
	prev.Terminated()
	return true
}

// Release frees the slot if c holds it.
func (r *Registry) Release(c Claimant) {
	if r.owner == c {
		r.owner = nil
	}
}

// RequestTerminate runs a termination round on behalf of c without
// claiming the slot. It reports the owner's decision and frees the
// slot when the owner yields. An empty slot accepts trivially.
func (r *Registry) RequestTerminate(c Claimant) bool {
	if r.owner == nil || r.owner == c {
		return true
	}
	if !r.owner.AllowTermination() {
		return false
	}
	prev := r.owner
	r.owner = nil
	prev.Terminated()
	return true
}
