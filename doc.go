// File: lixenwraith/bind/doc.go

// Package bind provides two-way data binding between typed configuration
// properties (getter/setter pairs) and interactive controls of an external
// toolkit, without either side knowing the other's concrete type.
//
// Features:
//   - Adapter selection from the value type and control kind, checked by the compiler
//   - Initialization adapters pushing property values into controls
//   - Change-subscription adapters feeding control edits back through setters
//   - Secret values unwrapped only when displayed, re-wrapped on every edit
//   - Modal color selection with an explicit commit/cancel result
//   - Inert pass-through pairs for value types without a visual form
//   - Per-control metadata flags in a typed side table
//   - Table-driven binding declarations loaded from TOML, YAML or JSON
//
// Quick Start:
//
//	enabled := true
//	box := toolkit.NewCheckBox()
//
//	p := bind.VarProperty(&enabled)
//	c := bind.NewToggle(box)
//
//	bind.Initialize(p, c) // box shows true
//	bind.Subscribe(p, c)  // clicking the box updates enabled
//
// Pairs without an adapter do not compile:
//
//	bind.Initialize(bind.VarProperty(&name), bind.NewToggle(box)) // string vs Control[bool]
//
// Declaration tables:
//
//	[[property]]
//	class   = "Network"
//	type    = "bool"
//	get     = "TLSEnabled"
//	set     = "SetTLSEnabled"
//	key     = "TLS"
//	parent  = "Network"
//	default = true
//	flags   = ["restart"]
//
//	form, err := bind.NewBuilder().
//	    WithOwner(cfg).
//	    WithSchemaFile("bindings.toml").
//	    WithControl("TLSEnabled", bind.NewToggle(tlsBox)).
//	    Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	form.Init()    // INIT: controls from properties, flags attached
//	form.Connect() // CONNECT: control edits flow back into properties
//
// Threading:
// Adapters run synchronously on the goroutine delivering the toolkit's
// events. Only the color trigger blocks, for the duration of the modal
// dialog. There is no unsubscribe; listeners live as long as their control.
package bind
