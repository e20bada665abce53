package layout

// measure computes content-derived sizes bottom-up. A container's intrinsic
// size is the sum of its children on the main axis (plus gaps and padding)
// and the max on the cross axis.
func (e *Engine) measure(id NodeID, availWidth, availHeight int) Size {
	n := e.node(id)
	st := n.style

	innerW := st.Width.Resolve(availWidth, availWidth) - st.Padding.Horizontal()
	innerH := st.Height.Resolve(availHeight, availHeight) - st.Padding.Vertical()
	innerW = max(innerW, 0)
	innerH = max(innerH, 0)

	var mainSum, crossMax int
	for _, c := range n.children {
		cs := e.measure(c, innerW, innerH)
		cn := e.node(c)
		cw := cn.style.Width.Resolve(innerW, cs.Width)
		ch := cn.style.Height.Resolve(innerH, cs.Height)
		cm, cc := axes(cw, ch, st.Direction)
		mainSum += cm
		crossMax = max(crossMax, cc)
	}
	if len(n.children) > 1 {
		mainSum += st.Gap * (len(n.children) - 1)
	}

	n.intrinsic = sized(
		mainSum+padMain(st),
		crossMax+padCross(st),
		st.Direction,
	)
	return n.intrinsic
}

// place assigns final bounds top-down and stamps pre-order paint indices.
// The parent resolves each child's declared dimensions against its content
// box, distributes leftover main-axis space by Grow weight, then applies
// Justify and Align for whatever space remains.
func (e *Engine) place(id NodeID, bounds Rect, order *uint32) {
	n := e.node(id)
	st := n.style
	n.layout = EngineLayout{Bounds: bounds, Order: *order}
	n.solved = true
	*order++

	if len(n.children) == 0 {
		return
	}

	content := bounds.Inset(st.Padding)
	contentMain, contentCross := axes(content.Width, content.Height, st.Direction)

	mains := make([]int, len(n.children))
	crosses := make([]int, len(n.children))
	used := st.Gap * (len(n.children) - 1)
	var totalGrow float64
	for i, c := range n.children {
		cn := e.node(c)
		im, ic := axes(cn.intrinsic.Width, cn.intrinsic.Height, st.Direction)
		mains[i] = cn.style.main(st.Direction).Resolve(contentMain, im)
		crosses[i] = cn.style.cross(st.Direction).Resolve(contentCross, ic)
		used += mains[i]
		totalGrow += cn.style.Grow
	}

	free := contentMain - used
	if free > 0 && totalGrow > 0 {
		// Integer division loses cells; the last grower takes the remainder
		// so the children always fill the content box exactly.
		given := 0
		last := -1
		for i, c := range n.children {
			g := e.node(c).style.Grow
			if g <= 0 {
				continue
			}
			extra := int(float64(free) * g / totalGrow)
			mains[i] += extra
			given += extra
			last = i
		}
		mains[last] += free - given
		free = 0
	}

	var offset, between int
	if free > 0 {
		switch st.Justify {
		case JustifyEnd:
			offset = free
		case JustifyCenter:
			offset = free / 2
		case JustifySpaceBetween:
			if len(n.children) > 1 {
				between = free / (len(n.children) - 1)
			}
		}
	}

	cursor := offset
	for i, c := range n.children {
		cn := e.node(c)
		cross := crosses[i]
		if st.Align == AlignStretch && cn.style.cross(st.Direction).IsAuto() {
			cross = contentCross
		}
		var crossPos int
		switch st.Align {
		case AlignCenter:
			crossPos = (contentCross - cross) / 2
		case AlignEnd:
			crossPos = contentCross - cross
		}

		var child Rect
		if st.Direction == Row {
			child = NewRect(content.X+cursor, content.Y+crossPos, mains[i], cross)
		} else {
			child = NewRect(content.X+crossPos, content.Y+cursor, cross, mains[i])
		}
		e.place(c, child, order)
		cursor += mains[i] + st.Gap + between
	}
}

// axes splits width/height into (main, cross) for the given direction.
func axes(w, h int, dir Direction) (main, cross int) {
	if dir == Row {
		return w, h
	}
	return h, w
}

// sized builds a Size from (main, cross) for the given direction.
func sized(main, cross int, dir Direction) Size {
	if dir == Row {
		return Size{Width: main, Height: cross}
	}
	return Size{Width: cross, Height: main}
}

func padMain(st Style) int {
	if st.Direction == Row {
		return st.Padding.Horizontal()
	}
	return st.Padding.Vertical()
}

func padCross(st Style) int {
	if st.Direction == Row {
		return st.Padding.Vertical()
	}
	return st.Padding.Horizontal()
}
