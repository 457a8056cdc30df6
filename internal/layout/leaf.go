package layout

// leaf sizes a node without children from its style and, when the node is
// measurable, from its measured content.
func (e *engine) leaf(n Layoutable, style *Style, in sizingInput) (sizingOutput, error) {
	box := newBoxModel(style, in.parent)
	known := box.clampKnown(box.withAspect(in.known.orElse(box.size)))

	if known.Width.Valid && known.Height.Valid {
		size := box.clampSize(Size{Width: known.Width.Value, Height: known.Height.Value})
		return sizingOutput{size: size, content: box.pb}, nil
	}

	var content Size
	if n.Measurable() {
		inner := box.inner(known)
		m, err := n.Measure(inner, box.innerAvailable(inner, in.available))
		e.stats.Measures++
		if err != nil {
			return sizingOutput{}, err
		}
		content = m
	}

	size := Size{
		Width:  known.Width.Or(content.Width + box.pb.Width),
		Height: known.Height.Or(content.Height + box.pb.Height),
	}
	size = box.clampSize(size)
	return sizingOutput{size: size, content: content.Add(box.pb)}, nil
}
