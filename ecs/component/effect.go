package component

// Flash is a short-lived burst marking where a ship died. Purely visual; the
// combat and cull systems never see it.
type Flash struct {
	Age      float64
	Duration float64
	Size     float64
}

var FlashComponent = NewComponent[Flash]()
