package backend

import "github.com/lixenwraith/termkit/event"

// Decode translates one raw driver code into an input event. For codes
// in the printable byte range it reads UTF-8 continuation bytes through
// next. Decoding is total: anything the tables don't claim becomes an
// Unknown event carrying the code's 4 little-endian bytes.
func Decode(code int, next func() byte) event.Event {
	// UTF-8 lead bytes take priority over the named-key tables
	if code >= 32 && code <= 255 && code != 127 {
		return event.NewChar(readChar(byte(code), next))
	}

	switch code {
	// Sent when nothing arrived within the poll interval
	case -1:
		return event.NewRefresh()

	case 9:
		return event.NewKey(event.KeyTab)
	// '\n' and the numpad Enter are the same key
	case 10, codeEnter:
		return event.NewKey(event.KeyEnter)
	// Escape pressed by itself; sequences were consumed earlier
	case 27:
		return event.NewKey(event.KeyEsc)
	// Backspace sends 127, Ctrl-H sends the named code
	case 127, codeBackspace:
		return event.NewKey(event.KeyBackspace)

	case codeResize:
		return event.NewResize()

	// Values 512 and above are driver extensions for modified
	// navigation keys. Undocumented but stable in practice.
	case 520:
		return event.Alted(event.KeyDel)
	case 521:
		return event.AltShifted(event.KeyDel)
	case 522:
		return event.Ctrled(event.KeyDel)
	case 523:
		return event.CtrlShifted(event.KeyDel)

	case 526:
		return event.Alted(event.KeyDown)
	case 527:
		return event.AltShifted(event.KeyDown)
	case 528:
		return event.Ctrled(event.KeyDown)
	case 529:
		return event.CtrlShifted(event.KeyDown)
	case 530:
		return event.CtrlAlted(event.KeyDown)

	case 531:
		return event.Alted(event.KeyEnd)
	case 532:
		return event.AltShifted(event.KeyEnd)
	case 533:
		return event.Ctrled(event.KeyEnd)
	case 534:
		return event.CtrlShifted(event.KeyEnd)
	case 535:
		return event.CtrlAlted(event.KeyEnd)

	case 536:
		return event.Alted(event.KeyHome)
	case 537:
		return event.AltShifted(event.KeyHome)
	case 538:
		return event.Ctrled(event.KeyHome)
	case 539:
		return event.CtrlShifted(event.KeyHome)
	case 540:
		return event.CtrlAlted(event.KeyHome)

	case 541:
		return event.Alted(event.KeyIns)
	case 542:
		return event.AltShifted(event.KeyIns)
	case 543:
		return event.Ctrled(event.KeyIns)
	// 544 (Ctrl+Shift+Ins) is never reported
	case 545:
		return event.CtrlAlted(event.KeyIns)

	case 546:
		return event.Alted(event.KeyLeft)
	case 547:
		return event.AltShifted(event.KeyLeft)
	case 548:
		return event.Ctrled(event.KeyLeft)
	case 549:
		return event.CtrlShifted(event.KeyLeft)
	case 550:
		return event.CtrlAlted(event.KeyLeft)

	case 551:
		return event.Alted(event.KeyPageDown)
	case 552:
		return event.AltShifted(event.KeyPageDown)
	case 553:
		return event.Ctrled(event.KeyPageDown)
	case 554:
		return event.CtrlShifted(event.KeyPageDown)
	case 555:
		return event.CtrlAlted(event.KeyPageDown)

	case 556:
		return event.Alted(event.KeyPageUp)
	case 557:
		return event.AltShifted(event.KeyPageUp)
	case 558:
		return event.Ctrled(event.KeyPageUp)
	case 559:
		return event.CtrlShifted(event.KeyPageUp)
	case 560:
		return event.CtrlAlted(event.KeyPageUp)

	case 561:
		return event.Alted(event.KeyRight)
	case 562:
		return event.AltShifted(event.KeyRight)
	case 563:
		return event.Ctrled(event.KeyRight)
	case 564:
		return event.CtrlShifted(event.KeyRight)
	case 565:
		return event.CtrlAlted(event.KeyRight)

	case 567:
		return event.Alted(event.KeyUp)
	case 568:
		return event.AltShifted(event.KeyUp)
	case 569:
		return event.Ctrled(event.KeyUp)
	case 570:
		return event.CtrlShifted(event.KeyUp)
	case 571:
		return event.CtrlAlted(event.KeyUp)

	case codeB2:
		return event.NewKey(event.KeyNumpadCenter)
	case codeDel:
		return event.NewKey(event.KeyDel)
	case codeIns:
		return event.NewKey(event.KeyIns)
	case codeBTab:
		return event.Shifted(event.KeyTab)
	case codeSLeft:
		return event.Shifted(event.KeyLeft)
	case codeSRight:
		return event.Shifted(event.KeyRight)
	case codeLeft:
		return event.NewKey(event.KeyLeft)
	case codeRight:
		return event.NewKey(event.KeyRight)
	case codeUp:
		return event.NewKey(event.KeyUp)
	case codeDown:
		return event.NewKey(event.KeyDown)
	case codeSUp:
		return event.Shifted(event.KeyUp)
	case codeSDown:
		return event.Shifted(event.KeyDown)
	case codePageUp:
		return event.NewKey(event.KeyPageUp)
	case codePageDown:
		return event.NewKey(event.KeyPageDown)
	case codeHome:
		return event.NewKey(event.KeyHome)
	case codeEnd:
		return event.NewKey(event.KeyEnd)
	case codeSHome:
		return event.Shifted(event.KeyHome)
	case codeSEnd:
		return event.Shifted(event.KeyEnd)
	case codeSDel:
		return event.Shifted(event.KeyDel)
	case codeSPageDown:
		return event.Shifted(event.KeyPageDown)
	case codeSPageUp:
		return event.Shifted(event.KeyPageUp)
	}

	switch {
	case code >= codeF1 && code <= codeF12:
		return event.NewKey(event.FromF(code - codeF0))
	case code >= codeShiftF1 && code <= codeShiftF1+11:
		return event.Shifted(event.FromF(code - codeShiftF1 + 1))
	case code >= codeCtrlF1 && code <= codeCtrlF1+11:
		return event.Ctrled(event.FromF(code - codeCtrlF1 + 1))
	case code >= codeCtrlShiftF1 && code <= codeCtrlShiftF1+11:
		return event.CtrlShifted(event.FromF(code - codeCtrlShiftF1 + 1))
	case code >= codeAltF1 && code <= codeAltF1+11:
		return event.Alted(event.FromF(code - codeAltF1 + 1))

	// Codes 8-10 (Ctrl-H/I/J) are claimed above, so they never land here
	case code >= 1 && code <= 25:
		return event.NewCtrlChar(rune('a' + code - 1))
	}

	return event.NewUnknown(int32(code))
}
