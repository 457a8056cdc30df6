package layout

import "math"

// flexItem holds intermediate calculation state for a child.
// This is stack-allocated per layout call, not stored on nodes.
type flexItem struct {
	node  Layoutable
	style *Style
	order int
	box   boxModel

	basis      float64
	hypMain    float64
	targetMain float64
	minMain    MaybeFloat
	maxMain    MaybeFloat
	grow       float64
	shrink     float64
	frozen     bool
	violation  float64

	hypCross   float64
	crossSize  float64
	stretched  bool
	mainPos    float64
	crossPos   float64
	marginMain [2]float64 // start, end along the main axis
}

func (it *flexItem) outerHypMain() float64 { return it.hypMain + it.marginMain[0] + it.marginMain[1] }
func (it *flexItem) outerTarget() float64  { return it.targetMain + it.marginMain[0] + it.marginMain[1] }

// flexLine is one line of items after wrapping.
type flexLine struct {
	items     []*flexItem
	crossSize float64
	crossPos  float64
}

// axisMargins returns the start and end margins along the main or cross axis.
func axisMargins(m Rect, horizontal bool) [2]float64 {
	if horizontal {
		return [2]float64{m.Left, m.Right}
	}
	return [2]float64{m.Top, m.Bottom}
}

func axisAuto(a Edges[bool], horizontal bool) [2]bool {
	if horizontal {
		return [2]bool{a.Left, a.Right}
	}
	return [2]bool{a.Top, a.Bottom}
}

// flex arranges children with the flexbox algorithm.
func (e *engine) flex(style *Style, children []Layoutable, in sizingInput) (sizingOutput, error) {
	dir := style.FlexDirection()
	row := dir.IsRow()

	box := newBoxModel(style, in.parent)
	known := box.clampKnown(in.known.orElse(box.size))
	inner := box.inner(known)
	avail := box.innerAvailable(inner, in.available)

	gapW, gapH := style.Gap()
	gapMain := resolve(gapW, inner.Width).Or(0)
	gapCross := resolve(gapH, inner.Height).Or(0)
	if !row {
		gapMain = resolve(gapH, inner.Height).Or(0)
		gapCross = resolve(gapW, inner.Width).Or(0)
	}

	inFlow, absolute := partitionChildren(children, in.mode)

	// Phase 1: Compute base sizes and hypothetical main sizes
	items := make([]flexItem, len(inFlow))
	for i, idx := range inFlow {
		child := children[idx]
		it := &items[i]
		it.node = child
		it.style = child.LayoutStyle()
		it.order = idx
		it.box = newBoxModel(it.style, inner)
		it.marginMain = axisMargins(it.box.margin, row)
		if dir.IsReverse() {
			it.marginMain[0], it.marginMain[1] = it.marginMain[1], it.marginMain[0]
		}
		it.grow = it.style.FlexGrow()
		it.shrink = it.style.FlexShrink()
		it.minMain = it.box.minSize.main(row)
		it.maxMain = it.box.maxSize.main(row)

		basis := resolve(it.style.FlexBasis(), inner.main(row))
		if !basis.Valid {
			basis = it.box.size.main(row)
		}
		if !basis.Valid {
			crossKnown := it.box.size.cross(row)
			if !crossKnown.Valid && style.FlexWrap() == NoWrap && inner.cross(row).Valid &&
				alignSelf(style, it.style) == AlignStretch && !hasAutoCross(it.box, row) {
				m := axisMargins(it.box.margin, !row)
				crossKnown = Some(max(inner.cross(row).Value-m[0]-m[1], 0))
			}

			var mainSpace AvailableSpace = MaxContent{}
			if _, ok := avail.main(row).(MinContent); ok {
				mainSpace = MinContent{}
			}
			out, err := e.computeNode(child, sizingInput{
				known:     knownFromAxes(row, None(), crossKnown),
				parent:    inner,
				available: availableFromAxes(row, mainSpace, avail.cross(row)),
				mode:      modeSize,
			})
			if err != nil {
				return sizingOutput{}, err
			}
			basis = Some(out.size.main(row))
		}

		it.basis = basis.Value
		it.hypMain = max(clamp(it.basis, it.minMain, it.maxMain), it.box.pb.main(row))
	}

	// Phase 2: Collect items into lines
	lines := collectLines(items, style.FlexWrap() != NoWrap, inner.main(row).OrElse(definiteValue(avail.main(row))), gapMain)

	// Phase 3: Determine the container's inner main size
	innerMain, ok := inner.main(row).Get()
	if !ok {
		longest := 0.0
		for _, line := range lines {
			longest = max(longest, lineOuterHyp(line, gapMain))
		}
		innerMain = longest
		if v, ok := definiteValue(avail.main(row)).Get(); ok && len(lines) > 1 {
			innerMain = max(innerMain, v)
		}
		innerMain = max(clamp(innerMain+box.pb.main(row), box.minSize.main(row), box.maxSize.main(row))-box.pb.main(row), 0)
	}

	// Phase 4: Resolve flexible lengths
	for _, line := range lines {
		resolveFlexibleLengths(line.items, innerMain, gapMain, row)
	}

	// Phase 5: Hypothetical cross sizes
	innerMainKnown := Some(innerMain)
	containerInner := knownFromAxes(row, innerMainKnown, inner.cross(row))
	for i := range items {
		it := &items[i]
		cross := it.box.size.cross(row)
		if !cross.Valid {
			out, err := e.computeNode(it.node, sizingInput{
				known:     knownFromAxes(row, Some(it.targetMain), None()),
				parent:    containerInner,
				available: availableFromAxes(row, NewDefinite(it.outerTarget()), avail.cross(row)),
				mode:      modeSize,
			})
			if err != nil {
				return sizingOutput{}, err
			}
			cross = Some(out.size.cross(row))
		}
		it.hypCross = max(clamp(cross.Value, it.box.minSize.cross(row), it.box.maxSize.cross(row)), it.box.pb.cross(row))
	}

	// Phase 6: Line cross sizes and the container's inner cross size
	innerCrossKnown := inner.cross(row)
	for i := range lines {
		line := &lines[i]
		if len(lines) == 1 && style.FlexWrap() == NoWrap && innerCrossKnown.Valid {
			line.crossSize = innerCrossKnown.Value
			continue
		}
		for _, it := range line.items {
			m := axisMargins(it.box.margin, !row)
			line.crossSize = max(line.crossSize, it.hypCross+m[0]+m[1])
		}
	}

	innerCross, ok := innerCrossKnown.Get()
	if !ok {
		total := gapCross * float64(max(len(lines)-1, 0))
		for _, line := range lines {
			total += line.crossSize
		}
		pbCross := box.pb.cross(row)
		innerCross = max(clamp(total+pbCross, box.minSize.cross(row), box.maxSize.cross(row))-pbCross, 0)
		if len(lines) == 1 && style.FlexWrap() == NoWrap {
			lines[0].crossSize = innerCross
		}
	}

	size := fromAxes(row, innerMain, innerCross).Add(box.pb)
	if in.mode == modeSize {
		return sizingOutput{size: size, content: size}, nil
	}

	// Phase 7: Distribute cross space between lines
	alignContent, ok := style.AlignContent()
	if !ok {
		alignContent = ContentStretch
	}
	totalLines := gapCross * float64(max(len(lines)-1, 0))
	for _, line := range lines {
		totalLines += line.crossSize
	}
	freeCross := innerCross - totalLines
	if alignContent == ContentStretch && freeCross > 0 && style.FlexWrap() != NoWrap {
		extra := freeCross / float64(len(lines))
		for i := range lines {
			lines[i].crossSize += extra
		}
		freeCross = 0
	}
	offset := calculateJustifyOffset(alignContent, freeCross, len(lines))
	spacing := calculateJustifySpacing(alignContent, freeCross, len(lines))
	for i := range lines {
		lines[i].crossPos = offset
		offset += lines[i].crossSize + gapCross + spacing
	}
	if style.FlexWrap() == WrapReverse {
		for i := range lines {
			lines[i].crossPos = innerCross - lines[i].crossPos - lines[i].crossSize
		}
	}

	// Phase 8: Cross-axis sizing and alignment
	for _, line := range lines {
		for _, it := range line.items {
			align := alignSelf(style, it.style)
			m := axisMargins(it.box.margin, !row)
			autoM := axisAuto(it.box.autoMargin, !row)

			it.crossSize = it.hypCross
			if align == AlignStretch && !it.box.size.cross(row).Valid && !autoM[0] && !autoM[1] {
				it.crossSize = max(clamp(line.crossSize-m[0]-m[1], it.box.minSize.cross(row), it.box.maxSize.cross(row)), it.box.pb.cross(row))
				it.stretched = true
			}

			free := line.crossSize - it.crossSize - m[0] - m[1]
			var off float64
			switch {
			case autoM[0] && autoM[1]:
				off = free / 2
			case autoM[0]:
				off = free
			case autoM[1]:
				off = 0
			default:
				off = calculateAlignOffset(align, free, style.FlexWrap() == WrapReverse)
			}
			it.crossPos = line.crossPos + m[0] + off
		}
	}

	// Phase 9: Main-axis positioning (justify)
	justify, ok := style.JustifyContent()
	if !ok {
		justify = ContentFlexStart
	}
	for _, line := range lines {
		used := gapMain * float64(max(len(line.items)-1, 0))
		autoCount := 0
		for _, it := range line.items {
			used += it.outerTarget()
			autoM := mainAutoMargins(it, dir)
			if autoM[0] {
				autoCount++
			}
			if autoM[1] {
				autoCount++
			}
		}
		free := innerMain - used

		var autoShare float64
		if free > 0 && autoCount > 0 {
			autoShare = free / float64(autoCount)
			free = 0
		}

		j := justify
		if dir.IsReverse() {
			j = flipStart(j)
		}
		offset := calculateJustifyOffset(j, free, len(line.items))
		spacing := calculateJustifySpacing(j, free, len(line.items))
		for _, it := range line.items {
			autoM := mainAutoMargins(it, dir)
			start := it.marginMain[0]
			end := it.marginMain[1]
			if autoM[0] {
				start += autoShare
			}
			if autoM[1] {
				end += autoShare
			}
			it.mainPos = offset + start
			offset += start + it.targetMain + end + gapMain + spacing
		}
		if dir.IsReverse() {
			for _, it := range line.items {
				it.mainPos = innerMain - it.mainPos - it.targetMain
			}
		}
	}

	// Phase 10: Lay out children and convert to locations
	origin := box.contentOrigin()
	content := Size{}
	for i := range items {
		it := &items[i]
		out, err := e.computeNode(it.node, sizingInput{
			known:     knownFromAxes(row, Some(it.targetMain), Some(it.crossSize)),
			parent:    containerInner,
			available: availableFromAxes(row, NewDefinite(it.outerTarget()), NewDefinite(it.crossSize)),
			mode:      modePerform,
		})
		if err != nil {
			return sizingOutput{}, err
		}

		pos := fromAxes(row, it.mainPos, it.crossPos)
		loc := origin.Add(Point{X: pos.Width, Y: pos.Height}).Add(relativeOffset(it.style, containerInner))
		e.place(it.node, it.order, loc, out, containerInner)
		content = extent(content, loc, out.size, it.box.margin)
	}

	if err := e.absolute(children, absolute, size, box, in.mode); err != nil {
		return sizingOutput{}, err
	}

	return sizingOutput{size: size, content: content.Max(size)}, nil
}

// alignSelf returns the cross-axis alignment of a child.
func alignSelf(parent, child *Style) AlignItems {
	if a, ok := child.AlignSelf(); ok {
		return a
	}
	if a, ok := parent.AlignItems(); ok {
		return a
	}
	return AlignStretch
}

// mainAutoMargins returns the auto flags of the logical start and end margins.
func mainAutoMargins(it *flexItem, dir FlexDirection) [2]bool {
	a := axisAuto(it.box.autoMargin, dir.IsRow())
	if dir.IsReverse() {
		a[0], a[1] = a[1], a[0]
	}
	return a
}

func hasAutoCross(b boxModel, row bool) bool {
	a := axisAuto(b.autoMargin, !row)
	return a[0] || a[1]
}

// collectLines splits items into lines no longer than limit. Without
// wrapping, or without a definite limit, every item shares one line.
func collectLines(items []flexItem, wrap bool, limit MaybeFloat, gap float64) []flexLine {
	if len(items) == 0 {
		return []flexLine{{}}
	}
	if !wrap || !limit.Valid {
		line := flexLine{items: make([]*flexItem, len(items))}
		for i := range items {
			line.items[i] = &items[i]
		}
		return []flexLine{line}
	}

	var lines []flexLine
	var cur flexLine
	used := 0.0
	for i := range items {
		it := &items[i]
		next := used + it.outerHypMain()
		if len(cur.items) > 0 {
			next += gap
		}
		if len(cur.items) > 0 && next > limit.Value {
			lines = append(lines, cur)
			cur = flexLine{}
			next = it.outerHypMain()
		}
		cur.items = append(cur.items, it)
		used = next
	}
	return append(lines, cur)
}

func lineOuterHyp(line flexLine, gap float64) float64 {
	total := gap * float64(max(len(line.items)-1, 0))
	for _, it := range line.items {
		total += it.outerHypMain()
	}
	return total
}

// resolveFlexibleLengths distributes free space on a line, freezing items
// that hit their min or max constraints until the space is settled.
func resolveFlexibleLengths(items []*flexItem, innerMain, gap float64, row bool) {
	if len(items) == 0 {
		return
	}

	used := gap * float64(len(items)-1)
	for _, it := range items {
		used += it.outerHypMain()
	}
	growing := used < innerMain

	for _, it := range items {
		it.targetMain = it.basis
		it.frozen = false
		factor := it.shrink
		if growing {
			factor = it.grow
		}
		if factor == 0 || (growing && it.basis > it.hypMain) || (!growing && it.basis < it.hypMain) {
			it.targetMain = it.hypMain
			it.frozen = true
		}
	}

	remaining := func() float64 {
		free := innerMain - gap*float64(len(items)-1)
		for _, it := range items {
			if it.frozen {
				free -= it.outerTarget()
			} else {
				free -= it.basis + it.marginMain[0] + it.marginMain[1]
			}
		}
		return free
	}
	initialFree := remaining()

	for {
		active := 0
		sumFactors := 0.0
		for _, it := range items {
			if it.frozen {
				continue
			}
			active++
			if growing {
				sumFactors += it.grow
			} else {
				sumFactors += it.shrink
			}
		}
		if active == 0 {
			return
		}

		free := remaining()
		if sumFactors < 1 {
			if scaled := initialFree * sumFactors; math.Abs(scaled) < math.Abs(free) {
				free = scaled
			}
		}

		if growing && sumFactors > 0 {
			for _, it := range items {
				if !it.frozen {
					it.targetMain = it.basis + free*it.grow/sumFactors
				}
			}
		} else if !growing {
			sumScaled := 0.0
			for _, it := range items {
				if !it.frozen {
					sumScaled += it.shrink * it.basis
				}
			}
			for _, it := range items {
				if it.frozen {
					continue
				}
				it.targetMain = it.basis
				if sumScaled > 0 {
					it.targetMain = it.basis + free*(it.shrink*it.basis)/sumScaled
				}
			}
		}

		totalViolation := 0.0
		for _, it := range items {
			if it.frozen {
				continue
			}
			clamped := max(clamp(it.targetMain, it.minMain, it.maxMain), it.box.pb.main(row))
			it.violation = clamped - it.targetMain
			it.targetMain = clamped
			totalViolation += it.violation
		}

		for _, it := range items {
			if it.frozen {
				continue
			}
			switch {
			case totalViolation == 0,
				totalViolation > 0 && it.violation > 0,
				totalViolation < 0 && it.violation < 0:
				it.frozen = true
			}
		}
	}
}

// flipStart swaps flex-relative start and end for reversed directions so
// that Start and End stay physical.
func flipStart(j AlignContent) AlignContent {
	switch j {
	case ContentStart:
		return ContentFlexEnd
	case ContentEnd:
		return ContentFlexStart
	}
	return j
}

// calculateJustifyOffset returns the initial offset for positioning children
// based on the justify mode and available free space.
func calculateJustifyOffset(justify AlignContent, freeSpace float64, itemCount int) float64 {
	if itemCount == 0 {
		return 0
	}
	if freeSpace <= 0 {
		// Overflowing content stays start-aligned except when centered or
		// end-aligned, as in CSS.
		switch justify {
		case ContentEnd, ContentFlexEnd:
			return freeSpace
		case ContentCenter:
			return freeSpace / 2
		}
		return 0
	}

	switch justify {
	case ContentEnd, ContentFlexEnd:
		return freeSpace
	case ContentCenter:
		return freeSpace / 2
	case ContentSpaceAround:
		return freeSpace / float64(itemCount*2)
	case ContentSpaceEvenly:
		return freeSpace / float64(itemCount+1)
	default: // Start, FlexStart, Stretch, SpaceBetween
		return 0
	}
}

// calculateJustifySpacing returns the extra spacing between children
// based on the justify mode and available free space.
func calculateJustifySpacing(justify AlignContent, freeSpace float64, itemCount int) float64 {
	if freeSpace <= 0 || itemCount == 0 {
		return 0
	}

	switch justify {
	case ContentSpaceBetween:
		if itemCount == 1 {
			return 0
		}
		return freeSpace / float64(itemCount-1)
	case ContentSpaceAround:
		return freeSpace / float64(itemCount)
	case ContentSpaceEvenly:
		return freeSpace / float64(itemCount+1)
	default:
		return 0
	}
}

// calculateAlignOffset returns the offset for positioning a child on the cross axis.
func calculateAlignOffset(align AlignItems, free float64, wrapReverse bool) float64 {
	switch align {
	case AlignEnd:
		return free
	case AlignFlexEnd:
		if wrapReverse {
			return 0
		}
		return free
	case AlignFlexStart:
		if wrapReverse {
			return free
		}
		return 0
	case AlignCenter:
		return free / 2
	default: // Start, Baseline, Stretch
		return 0
	}
}
