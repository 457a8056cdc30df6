package layout

// block stacks children vertically. Children with an auto width fill the
// container's content width. Margins do not collapse.
func (e *engine) block(style *Style, children []Layoutable, in sizingInput) (sizingOutput, error) {
	box := newBoxModel(style, in.parent)
	known := box.clampKnown(in.known.orElse(box.size))
	inner := box.inner(known)
	avail := box.innerAvailable(inner, in.available)

	inFlow, absolute := partitionChildren(children, in.mode)

	// Without a definite width the block shrinks to its widest child.
	if !inner.Width.Valid {
		widest := 0.0
		for _, idx := range inFlow {
			child := children[idx]
			cbox := newBoxModel(child.LayoutStyle(), inner)
			out, err := e.computeNode(child, sizingInput{
				known:     cbox.size,
				parent:    inner,
				available: avail,
				mode:      modeSize,
			})
			if err != nil {
				return sizingOutput{}, err
			}
			widest = max(widest, out.size.Width+cbox.margin.Horizontal())
		}
		w := clamp(widest+box.pb.Width, box.minSize.Width, box.maxSize.Width)
		inner.Width = Some(max(w-box.pb.Width, 0))
		avail.Width = NewDefinite(inner.Width.Value)
	}

	origin := box.contentOrigin()
	content := Size{}
	cursor := 0.0
	for _, idx := range inFlow {
		child := children[idx]
		cstyle := child.LayoutStyle()
		cbox := newBoxModel(cstyle, inner)

		childKnown := cbox.size
		if !childKnown.Width.Valid && !cbox.autoMargin.Left && !cbox.autoMargin.Right {
			childKnown.Width = Some(max(inner.Width.Value-cbox.margin.Horizontal(), 0))
			childKnown = cbox.withAspect(childKnown)
		}
		childKnown = cbox.clampKnown(childKnown)

		out, err := e.computeNode(child, sizingInput{
			known:     childKnown,
			parent:    inner,
			available: AvailableSize{Width: avail.Width, Height: MaxContent{}},
			mode:      in.mode,
		})
		if err != nil {
			return sizingOutput{}, err
		}

		x := cbox.margin.Left
		free := inner.Width.Value - out.size.Width - cbox.margin.Horizontal()
		switch {
		case cbox.autoMargin.Left && cbox.autoMargin.Right:
			x += free / 2
		case cbox.autoMargin.Left:
			x += free
		case cbox.autoMargin.Right:
		default:
			switch style.TextAlign() {
			case TextAlignLegacyCenter:
				x += max(free, 0) / 2
			case TextAlignLegacyRight:
				x += max(free, 0)
			}
		}

		y := cursor + cbox.margin.Top
		cursor = y + out.size.Height + cbox.margin.Bottom

		if in.mode == modePerform {
			loc := origin.Add(Point{X: x, Y: y}).Add(relativeOffset(cstyle, inner))
			e.place(child, idx, loc, out, inner)
			content = extent(content, loc, out.size, cbox.margin)
		}
	}

	height := known.Height.Or(clamp(cursor+box.pb.Height, box.minSize.Height, box.maxSize.Height))
	size := box.clampSize(Size{Width: inner.Width.Value + box.pb.Width, Height: height})

	if err := e.absolute(children, absolute, size, box, in.mode); err != nil {
		return sizingOutput{}, err
	}
	return sizingOutput{size: size, content: content.Max(size)}, nil
}
