package layout

import "math"

// gridSpan is a range of track indices, end exclusive.
type gridSpan struct {
	start, end int
}

func (s gridSpan) count() int { return s.end - s.start }

// gridTrack holds the sizing state of one row or column.
type gridTrack struct {
	minFn  TrackMin
	maxFn  TrackMax
	base   float64
	limit  float64 // growth limit, +Inf while unbounded
	offset float64
}

func (t *gridTrack) flex() (float64, bool) {
	if f, ok := t.maxFn.(Fraction); ok {
		return f.value, true
	}
	return 0, false
}

type gridItem struct {
	node  Layoutable
	style *Style
	order int
	box   boxModel
	row   gridSpan
	col   gridSpan
}

// trackFunctions splits a track size into its min and max sizing functions.
func trackFunctions(t TrackSize) (TrackMin, TrackMax) {
	switch v := t.(type) {
	case Length:
		return v, v
	case Percent:
		return v, v
	case MinContent:
		return v, v
	case MaxContent:
		return v, v
	case Fraction:
		return Auto{}, v
	case FitContent:
		return Auto{}, v
	case Minmax:
		return v.Min(), v.Max()
	}
	return Auto{}, Auto{}
}

// buildTracks creates count tracks from the explicit template, repeating
// the auto track list for implicit tracks.
func buildTracks(template, auto []TrackSize, count int) []gridTrack {
	tracks := make([]gridTrack, max(count, len(template)))
	for i := range tracks {
		var size TrackSize = Auto{}
		switch {
		case i < len(template):
			size = template[i]
		case len(auto) > 0:
			size = auto[(i-len(template))%len(auto)]
		}
		tracks[i].minFn, tracks[i].maxFn = trackFunctions(size)
	}
	return tracks
}

// --- Placement ---

// lineRange resolves a placement against the explicit track count. When
// definite is false the start is left to auto-placement and only count is
// meaningful. Lines before the start of the grid clamp to the first line.
func lineRange(p GridPlacement, explicit int) (start, count int, definite bool) {
	lineIndex := func(l GridLine) int {
		if l.index > 0 {
			return l.index - 1
		}
		return max(explicit+1+l.index, 0)
	}

	switch s := p.Start().(type) {
	case GridLine:
		start := lineIndex(s)
		switch e := p.End().(type) {
		case GridLine:
			end := lineIndex(e)
			if end < start {
				start, end = end, start
			}
			return start, max(end-start, 1), true
		case GridSpan:
			return start, e.Count(), true
		}
		return start, 1, true
	case GridSpan:
		if e, ok := p.End().(GridLine); ok {
			end := lineIndex(e)
			start := max(end-s.Count(), 0)
			return start, max(end-start, 1), true
		}
		return 0, s.Count(), false
	}

	switch e := p.End().(type) {
	case GridLine:
		return max(lineIndex(e)-1, 0), 1, true
	case GridSpan:
		return 0, e.Count(), false
	}
	return 0, 1, false
}

// occupancy tracks which cells hold an item, indexed [block][inline].
type occupancy struct {
	cells [][]bool
}

func (o *occupancy) free(block, inline gridSpan) bool {
	for r := block.start; r < block.end && r < len(o.cells); r++ {
		row := o.cells[r]
		for c := inline.start; c < inline.end && c < len(row); c++ {
			if row[c] {
				return false
			}
		}
	}
	return true
}

func (o *occupancy) mark(block, inline gridSpan) {
	for len(o.cells) < block.end {
		o.cells = append(o.cells, nil)
	}
	for r := block.start; r < block.end; r++ {
		for len(o.cells[r]) < inline.end {
			o.cells[r] = append(o.cells[r], false)
		}
		for c := inline.start; c < inline.end; c++ {
			o.cells[r][c] = true
		}
	}
}

type axisPlacement struct {
	start, count int
	definite     bool
}

// placeItems assigns every item a row and column span and returns the
// number of rows and columns in the resulting grid.
//
// The cursor walks the inline axis (columns in row flow) and wraps onto
// the block axis, which grows as needed. Items locked to a block track are
// placed before fully automatic ones.
func placeItems(items []gridItem, flow GridAutoFlow, explicitRows, explicitCols int) (rows, cols int) {
	colFlow := flow.IsColumn()
	explicitInline, explicitBlock := explicitCols, explicitRows
	if colFlow {
		explicitInline, explicitBlock = explicitRows, explicitCols
	}

	inline := make([]axisPlacement, len(items))
	block := make([]axisPlacement, len(items))
	inlineCount := explicitInline
	for i := range items {
		var c, r axisPlacement
		c.start, c.count, c.definite = lineRange(items[i].style.GridColumn(), explicitCols)
		r.start, r.count, r.definite = lineRange(items[i].style.GridRow(), explicitRows)
		if colFlow {
			c, r = r, c
		}
		inline[i], block[i] = c, r
		if c.definite {
			inlineCount = max(inlineCount, c.start+c.count)
		} else {
			inlineCount = max(inlineCount, c.count)
		}
	}
	inlineCount = max(inlineCount, 1)

	var occ occupancy
	blockCount := explicitBlock
	assign := func(i int, in, bl gridSpan) {
		occ.mark(bl, in)
		blockCount = max(blockCount, bl.end)
		if colFlow {
			items[i].col, items[i].row = bl, in
		} else {
			items[i].col, items[i].row = in, bl
		}
	}

	// Step 1: fully definite items
	for i := range items {
		if inline[i].definite && block[i].definite {
			assign(i,
				gridSpan{inline[i].start, inline[i].start + inline[i].count},
				gridSpan{block[i].start, block[i].start + block[i].count})
		}
	}

	// Step 2: items locked to a block track
	lockedCursor := map[int]int{}
	for i := range items {
		if inline[i].definite || !block[i].definite {
			continue
		}
		bl := gridSpan{block[i].start, block[i].start + block[i].count}
		n := inline[i].count
		start := lockedCursor[bl.start]
		if flow.IsDense() {
			start = 0
		}
		c := start
		for ; c+n <= inlineCount; c++ {
			if occ.free(bl, gridSpan{c, c + n}) {
				break
			}
		}
		if c+n > inlineCount {
			c = start
		}
		assign(i, gridSpan{c, c + n}, bl)
		lockedCursor[bl.start] = c + n
	}

	// Step 3: everything else
	curBlock, curInline := 0, 0
	for i := range items {
		if block[i].definite {
			continue
		}
		if flow.IsDense() {
			curBlock, curInline = 0, 0
		}
		nb := block[i].count

		if inline[i].definite {
			in := gridSpan{inline[i].start, inline[i].start + inline[i].count}
			if in.start < curInline {
				curBlock++
			}
			for !occ.free(gridSpan{curBlock, curBlock + nb}, in) {
				curBlock++
			}
			assign(i, in, gridSpan{curBlock, curBlock + nb})
			curInline = in.end
			continue
		}

		n := inline[i].count
		for {
			if curInline+n > inlineCount {
				curBlock++
				curInline = 0
			}
			in := gridSpan{curInline, curInline + n}
			bl := gridSpan{curBlock, curBlock + nb}
			if occ.free(bl, in) {
				assign(i, in, bl)
				curInline = in.end
				break
			}
			curInline++
		}
	}

	if colFlow {
		return inlineCount, blockCount
	}
	return blockCount, inlineCount
}

// --- Track sizing ---

// gridAxis carries what track sizing needs to know about one axis.
type gridAxis struct {
	columns bool
	size    MaybeFloat     // definite content box size
	avail   AvailableSpace // content box budget when size is absent
	gap     float64
	align   AlignContent
}

// space returns the definite space to distribute, if any.
func (a gridAxis) space() MaybeFloat {
	return a.size.OrElse(definiteValue(a.avail))
}

func (a gridAxis) span(it *gridItem) gridSpan {
	if a.columns {
		return it.col
	}
	return it.row
}

// contributions returns an item's min- and max-content outer size along
// the axis. Row contributions use the already sized column widths.
func (e *engine) contributions(it *gridItem, axis gridAxis, columns []gridTrack, inner KnownSize) (minC, maxC float64, err error) {
	margin := it.box.margin.Vertical()
	size, lo, hi, pb := it.box.size.Height, it.box.minSize.Height, it.box.maxSize.Height, it.box.pb.Height
	if axis.columns {
		margin = it.box.margin.Horizontal()
		size, lo, hi, pb = it.box.size.Width, it.box.minSize.Width, it.box.maxSize.Width, it.box.pb.Width
	}
	if v, ok := size.Get(); ok {
		v = max(clamp(v, lo, hi), pb) + margin
		return v, v, nil
	}

	measure := func(space AvailableSpace) (float64, error) {
		in := sizingInput{parent: inner, mode: modeSize}
		if axis.columns {
			in.known = KnownSize{Height: it.box.size.Height}
			in.available = AvailableSize{Width: space, Height: MaxContent{}}
		} else {
			w := trackSpan(columns, it.col) - it.box.margin.Horizontal()
			in.known = KnownSize{Width: Some(max(w, 0))}
			in.available = AvailableSize{Width: NewDefinite(max(w, 0)), Height: space}
		}
		out, err := e.computeNode(it.node, in)
		if err != nil {
			return 0, err
		}
		if axis.columns {
			return out.size.Width + margin, nil
		}
		return out.size.Height + margin, nil
	}

	if minC, err = measure(MinContent{}); err != nil {
		return 0, 0, err
	}
	if maxC, err = measure(MaxContent{}); err != nil {
		return 0, 0, err
	}
	return minC, max(maxC, minC), nil
}

// trackSpan returns the size of a span of tracks including inner gaps.
func trackSpan(tracks []gridTrack, s gridSpan) float64 {
	if s.count() <= 0 || s.end > len(tracks) {
		return 0
	}
	last := tracks[s.end-1]
	return last.offset + last.base - tracks[s.start].offset
}

// sizeTracks runs the track sizing algorithm for one axis and assigns
// track offsets.
func (e *engine) sizeTracks(tracks []gridTrack, items []gridItem, axis gridAxis, columns []gridTrack, inner KnownSize) error {
	// Initialize base sizes and growth limits from fixed functions.
	for i := range tracks {
		t := &tracks[i]
		if v, ok := fixedTrack(t.minFn, axis.size); ok {
			t.base = v
		} else if _, isPct := t.minFn.(Percent); isPct {
			t.minFn = Auto{}
		}
		t.limit = math.Inf(1)
		if v, ok := fixedTrack(t.maxFn, axis.size); ok {
			t.limit = max(v, t.base)
		} else if _, isPct := t.maxFn.(Percent); isPct {
			t.maxFn = Auto{}
		}
	}

	// Resolve intrinsic sizes from item contributions, narrow spans first.
	flexContent := make([]float64, len(tracks))
	for pass := 1; ; pass++ {
		more := false
		for i := range items {
			it := &items[i]
			s := axis.span(it)
			if s.count() != pass {
				more = more || s.count() > pass
				continue
			}
			if s.end > len(tracks) {
				continue
			}
			spansFlex := false
			for k := s.start; k < s.end; k++ {
				if _, ok := tracks[k].flex(); ok {
					spansFlex = true
				}
			}
			if spansFlex && s.count() > 1 {
				continue
			}

			minC, maxC, err := e.contributions(it, axis, columns, inner)
			if err != nil {
				return err
			}
			gaps := axis.gap * float64(s.count()-1)
			growBases(tracks, s, minC-gaps, maxC-gaps)
			growLimits(tracks, s, axis.size, minC-gaps, maxC-gaps)
			if spansFlex {
				flexContent[s.start] = max(flexContent[s.start], maxC)
			}
		}
		if !more {
			break
		}
	}

	for i := range tracks {
		t := &tracks[i]
		if math.IsInf(t.limit, 1) {
			t.limit = t.base
		}
		t.limit = max(t.limit, t.base)
	}

	// Maximize tracks up to their growth limits.
	sumBase := func() float64 {
		total := axis.gap * float64(max(len(tracks)-1, 0))
		for _, t := range tracks {
			total += t.base
		}
		return total
	}
	if space, ok := axis.space().Get(); ok {
		distributeToLimits(tracks, space-sumBase())
	} else if _, ok := axis.avail.(MinContent); !ok {
		for i := range tracks {
			if _, isFlex := tracks[i].flex(); !isFlex {
				tracks[i].base = tracks[i].limit
			}
		}
	}

	// Expand flexible tracks.
	e.expandFlex(tracks, axis, flexContent)

	// Stretch auto tracks into the remaining space.
	if space, ok := axis.size.Get(); ok && axis.align == ContentStretch {
		free := space - sumBase()
		var autos []int
		for i := range tracks {
			if _, ok := tracks[i].maxFn.(Auto); ok {
				autos = append(autos, i)
			}
		}
		if free > 0 && len(autos) > 0 {
			share := free / float64(len(autos))
			for _, i := range autos {
				tracks[i].base += share
			}
		}
	}

	// Assign offsets using content alignment.
	free := 0.0
	if space, ok := axis.size.Get(); ok {
		free = space - sumBase()
	}
	offset := calculateJustifyOffset(axis.align, free, len(tracks))
	spacing := calculateJustifySpacing(axis.align, free, len(tracks))
	for i := range tracks {
		tracks[i].offset = offset
		offset += tracks[i].base + axis.gap + spacing
	}
	return nil
}

// fixedTrack resolves a Length, or a Percent against a definite size.
func fixedTrack(fn any, size MaybeFloat) (float64, bool) {
	switch v := fn.(type) {
	case Length:
		return v.value, true
	case Percent:
		if size.Valid {
			return size.Value * v.value, true
		}
	}
	return 0, false
}

// growBases raises the base sizes of intrinsic tracks in s so that they
// cover the item's contribution, sharing any shortfall equally.
func growBases(tracks []gridTrack, s gridSpan, minC, maxC float64) {
	var eligible []int
	current := 0.0
	need := minC
	for k := s.start; k < s.end; k++ {
		current += tracks[k].base
		switch tracks[k].minFn.(type) {
		case Auto, MinContent:
			eligible = append(eligible, k)
		case MaxContent:
			eligible = append(eligible, k)
			need = max(need, maxC)
		}
	}
	if short := need - current; short > 0 && len(eligible) > 0 {
		share := short / float64(len(eligible))
		for _, k := range eligible {
			tracks[k].base += share
		}
	}
}

// growLimits raises the growth limits of intrinsic tracks in s. size
// resolves percentage fit-content limits.
func growLimits(tracks []gridTrack, s gridSpan, size MaybeFloat, minC, maxC float64) {
	var eligible []int
	current := 0.0
	need := 0.0
	for k := s.start; k < s.end; k++ {
		t := &tracks[k]
		var target float64
		switch fn := t.maxFn.(type) {
		case Auto, MaxContent:
			target = maxC
		case MinContent:
			target = minC
		case FitContent:
			target = maxC
			if limit, ok := fixedTrack(fn.Limit(), size); ok {
				target = max(minC, min(maxC, limit))
			}
		default:
			limit := t.limit
			if math.IsInf(limit, 1) {
				limit = t.base
			}
			current += limit
			continue
		}
		eligible = append(eligible, k)
		need = max(need, target)
		if math.IsInf(t.limit, 1) {
			current += t.base
		} else {
			current += t.limit
		}
	}
	if len(eligible) == 0 {
		return
	}
	share := max(need-current, 0) / float64(len(eligible))
	for _, k := range eligible {
		t := &tracks[k]
		if math.IsInf(t.limit, 1) {
			t.limit = t.base
		}
		t.limit += share
		if s.count() == 1 {
			t.limit = max(t.limit, need)
		}
	}
}

// distributeToLimits grows non-flexible tracks equally without passing
// their growth limits.
func distributeToLimits(tracks []gridTrack, free float64) {
	for free > 1e-9 {
		var open []int
		for i := range tracks {
			if _, isFlex := tracks[i].flex(); !isFlex && tracks[i].base < tracks[i].limit {
				open = append(open, i)
			}
		}
		if len(open) == 0 {
			return
		}
		share := free / float64(len(open))
		for _, i := range open {
			grow := min(share, tracks[i].limit-tracks[i].base)
			tracks[i].base += grow
			free -= grow
		}
	}
}

// expandFlex sizes fr tracks. With definite space the leftover is shared
// by weight; otherwise each fr is sized to fit its content.
func (e *engine) expandFlex(tracks []gridTrack, axis gridAxis, flexContent []float64) {
	var flexIdx []int
	for i := range tracks {
		if _, ok := tracks[i].flex(); ok {
			flexIdx = append(flexIdx, i)
		}
	}
	if len(flexIdx) == 0 {
		return
	}

	var frSize float64
	if space, ok := axis.space().Get(); ok {
		leftover := space - axis.gap*float64(max(len(tracks)-1, 0))
		for i := range tracks {
			if _, ok := tracks[i].flex(); !ok {
				leftover -= tracks[i].base
			}
		}
		inflexible := map[int]bool{}
		for {
			sum := 0.0
			rest := leftover
			for _, i := range flexIdx {
				if inflexible[i] {
					rest -= tracks[i].base
					continue
				}
				f, _ := tracks[i].flex()
				sum += f
			}
			frSize = max(rest, 0) / max(sum, 1)
			changed := false
			for _, i := range flexIdx {
				f, _ := tracks[i].flex()
				if !inflexible[i] && tracks[i].base > frSize*f {
					inflexible[i] = true
					changed = true
				}
			}
			if !changed {
				break
			}
		}
	} else {
		for _, i := range flexIdx {
			f, _ := tracks[i].flex()
			content := max(tracks[i].base, flexContent[i])
			if _, ok := axis.avail.(MinContent); ok {
				content = tracks[i].base
			}
			if f > 1 {
				content /= f
			}
			frSize = max(frSize, content)
		}
	}

	for _, i := range flexIdx {
		f, _ := tracks[i].flex()
		tracks[i].base = max(tracks[i].base, frSize*f)
		tracks[i].limit = tracks[i].base
	}
}

// --- Layout ---

// grid arranges children on a two-dimensional grid of tracks.
func (e *engine) grid(style *Style, children []Layoutable, in sizingInput) (sizingOutput, error) {
	box := newBoxModel(style, in.parent)
	known := box.clampKnown(in.known.orElse(box.size))
	inner := box.inner(known)
	avail := box.innerAvailable(inner, in.available)

	inFlow, absolute := partitionChildren(children, in.mode)
	items := make([]gridItem, len(inFlow))
	for i, idx := range inFlow {
		child := children[idx]
		items[i] = gridItem{node: child, style: child.LayoutStyle(), order: idx}
		items[i].box = newBoxModel(items[i].style, inner)
	}

	templateRows := style.GridTemplateRows()
	templateCols := style.GridTemplateColumns()
	rowCount, colCount := placeItems(items, style.GridAutoFlow(), len(templateRows), len(templateCols))
	cols := buildTracks(templateCols, style.GridAutoColumns(), colCount)
	rows := buildTracks(templateRows, style.GridAutoRows(), rowCount)

	gapW, gapH := style.Gap()
	justifyContent, ok := style.JustifyContent()
	if !ok {
		justifyContent = ContentStretch
	}
	alignContent, ok := style.AlignContent()
	if !ok {
		alignContent = ContentStretch
	}

	colAxis := gridAxis{
		columns: true,
		size:    inner.Width,
		avail:   avail.Width,
		gap:     resolve(gapW, inner.Width).Or(0),
		align:   justifyContent,
	}
	if err := e.sizeTracks(cols, items, colAxis, nil, inner); err != nil {
		return sizingOutput{}, err
	}
	innerWidth := inner.Width.Or(clampInner(tracksTotal(cols, colAxis.gap), box, true))

	rowAxis := gridAxis{
		size:  inner.Height,
		avail: avail.Height,
		gap:   resolve(gapH, inner.Height).Or(0),
		align: alignContent,
	}
	if err := e.sizeTracks(rows, items, rowAxis, cols, KnownSize{Width: Some(innerWidth), Height: inner.Height}); err != nil {
		return sizingOutput{}, err
	}
	innerHeight := inner.Height.Or(clampInner(tracksTotal(rows, rowAxis.gap), box, false))

	size := Size{Width: innerWidth, Height: innerHeight}.Add(box.pb)
	if in.mode == modeSize {
		return sizingOutput{size: size, content: size}, nil
	}

	containerInner := KnownSize{Width: Some(innerWidth), Height: Some(innerHeight)}
	origin := box.contentOrigin()
	content := Size{}
	for i := range items {
		it := &items[i]
		areaX, areaW := cols[it.col.start].offset, trackSpan(cols, it.col)
		areaY, areaH := rows[it.row.start].offset, trackSpan(rows, it.row)

		justify := selfAlignment(it.style.JustifySelf, style.JustifyItems)
		align := selfAlignment(it.style.AlignSelf, style.AlignItems)

		childKnown := it.box.size
		if justify == AlignStretch && !childKnown.Width.Valid && !it.box.autoMargin.Left && !it.box.autoMargin.Right {
			childKnown.Width = Some(max(areaW-it.box.margin.Horizontal(), 0))
		}
		if align == AlignStretch && !childKnown.Height.Valid && !it.box.autoMargin.Top && !it.box.autoMargin.Bottom {
			childKnown.Height = Some(max(areaH-it.box.margin.Vertical(), 0))
		}
		childKnown = it.box.clampKnown(it.box.withAspect(childKnown))

		out, err := e.computeNode(it.node, sizingInput{
			known:     childKnown,
			parent:    containerInner,
			available: DefiniteSize(areaW, areaH),
			mode:      modePerform,
		})
		if err != nil {
			return sizingOutput{}, err
		}

		x := areaX + it.box.margin.Left + selfOffset(justify, it.box.autoMargin.Left, it.box.autoMargin.Right,
			areaW-out.size.Width-it.box.margin.Horizontal())
		y := areaY + it.box.margin.Top + selfOffset(align, it.box.autoMargin.Top, it.box.autoMargin.Bottom,
			areaH-out.size.Height-it.box.margin.Vertical())

		loc := origin.Add(Point{X: x, Y: y}).Add(relativeOffset(it.style, containerInner))
		e.place(it.node, it.order, loc, out, containerInner)
		content = extent(content, loc, out.size, it.box.margin)
	}

	if err := e.absolute(children, absolute, size, box, in.mode); err != nil {
		return sizingOutput{}, err
	}
	return sizingOutput{size: size, content: content.Max(size)}, nil
}

func tracksTotal(tracks []gridTrack, gap float64) float64 {
	total := gap * float64(max(len(tracks)-1, 0))
	for _, t := range tracks {
		total += t.base
	}
	return total
}

// clampInner applies the container's min/max to a content-derived inner size.
func clampInner(v float64, box boxModel, horizontal bool) float64 {
	pb, lo, hi := box.pb.Height, box.minSize.Height, box.maxSize.Height
	if horizontal {
		pb, lo, hi = box.pb.Width, box.minSize.Width, box.maxSize.Width
	}
	return max(clamp(v+pb, lo, hi)-pb, 0)
}

// selfAlignment returns the item's own alignment, falling back to the
// container default and then to Stretch.
func selfAlignment(self, items func() (AlignItems, bool)) AlignItems {
	if a, ok := self(); ok {
		return a
	}
	if a, ok := items(); ok {
		return a
	}
	return AlignStretch
}

// selfOffset positions an item inside its grid area.
func selfOffset(align AlignItems, autoStart, autoEnd bool, free float64) float64 {
	switch {
	case autoStart && autoEnd:
		return free / 2
	case autoStart:
		return free
	case autoEnd:
		return 0
	}
	return calculateAlignOffset(align, free, false)
}
