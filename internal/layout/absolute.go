package layout

// absolute lays out absolutely positioned children against the padding box
// of a container whose border box size and box model are known.
func (e *engine) absolute(children []Layoutable, indices []int, size Size, box boxModel, mode runMode) error {
	if mode != modePerform {
		return nil
	}

	paddingBox := Size{
		Width:  max(size.Width-box.border.Horizontal(), 0),
		Height: max(size.Height-box.border.Vertical(), 0),
	}
	container := KnownSize{Width: Some(paddingBox.Width), Height: Some(paddingBox.Height)}

	for _, idx := range indices {
		child := children[idx]
		style := child.LayoutStyle()
		cbox := newBoxModel(style, container)
		inset := style.Inset()

		left := resolve(inset.Left, container.Width)
		right := resolve(inset.Right, container.Width)
		top := resolve(inset.Top, container.Height)
		bottom := resolve(inset.Bottom, container.Height)

		known := cbox.size
		if !known.Width.Valid && left.Valid && right.Valid {
			known.Width = Some(max(paddingBox.Width-left.Value-right.Value-cbox.margin.Horizontal(), 0))
		}
		if !known.Height.Valid && top.Valid && bottom.Valid {
			known.Height = Some(max(paddingBox.Height-top.Value-bottom.Value-cbox.margin.Vertical(), 0))
		}
		known = cbox.clampKnown(cbox.withAspect(known))

		out, err := e.computeNode(child, sizingInput{
			known:     known,
			parent:    container,
			available: DefiniteSize(paddingBox.Width, paddingBox.Height),
			mode:      modePerform,
		})
		if err != nil {
			return err
		}

		var loc Point
		switch {
		case left.Valid:
			loc.X = box.border.Left + left.Value + cbox.margin.Left
		case right.Valid:
			loc.X = size.Width - box.border.Right - right.Value - out.size.Width - cbox.margin.Right
		default:
			loc.X = box.border.Left + box.padding.Left + cbox.margin.Left
		}
		switch {
		case top.Valid:
			loc.Y = box.border.Top + top.Value + cbox.margin.Top
		case bottom.Valid:
			loc.Y = size.Height - box.border.Bottom - bottom.Value - out.size.Height - cbox.margin.Bottom
		default:
			loc.Y = box.border.Top + box.padding.Top + cbox.margin.Top
		}

		e.place(child, idx, loc, out, container)
	}
	return nil
}
