package backend

// Raw driver key codes, numerically identical to the ncurses KEY_*
// constants. These ranges are an external protocol contract shared with
// existing terminal drivers; do not renumber them.
const (
	codeDown      = 258 // KEY_DOWN
	codeUp        = 259 // KEY_UP
	codeLeft      = 260 // KEY_LEFT
	codeRight     = 261 // KEY_RIGHT
	codeHome      = 262 // KEY_HOME
	codeBackspace = 263 // KEY_BACKSPACE
	codeF0        = 264 // KEY_F0, function keys are F0+n
	codeF1        = 265
	codeF12       = 276
	codeDel       = 330 // KEY_DC
	codeIns       = 331 // KEY_IC
	codeSDown     = 336 // KEY_SF, scroll-forward
	codeSUp       = 337 // KEY_SR, scroll-backward
	codePageDown  = 338 // KEY_NPAGE
	codePageUp    = 339 // KEY_PPAGE
	codeEnter     = 343 // KEY_ENTER, numpad enter
	codeB2        = 350 // KEY_B2, numpad center
	codeBTab      = 353 // KEY_BTAB, shift-tab
	codeEnd       = 360 // KEY_END
	codeSDel      = 383 // KEY_SDC
	codeSEnd      = 386 // KEY_SEND
	codeSHome     = 391 // KEY_SHOME
	codeSLeft     = 393 // KEY_SLEFT
	codeSPageDown = 396 // KEY_SNEXT
	codeSPageUp   = 398 // KEY_SPREVIOUS
	codeSRight    = 402 // KEY_SRIGHT
	codeResize    = 410 // KEY_RESIZE
)

// Function-key modifier ranges, one 12-wide band per modifier
const (
	codeShiftF1     = 277 // .. 288
	codeCtrlF1      = 289 // .. 300
	codeCtrlShiftF1 = 301 // .. 312
	codeAltF1       = 313 // .. 324
)
