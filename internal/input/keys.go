package input

// Key is a keyboard key. Values match GLFW key codes so a window can
// translate with a plain conversion.
type Key int

const (
	Key1            Key = 49
	Key2            Key = 50
	Key3            Key = 51
	Key4            Key = 52
	KeyA            Key = 65
	KeyD            Key = 68
	KeyE            Key = 69
	KeyJ            Key = 74
	KeyK            Key = 75
	KeyL            Key = 76
	KeyM            Key = 77
	KeyQ            Key = 81
	KeyS            Key = 83
	KeyW            Key = 87
	KeyLeftBracket  Key = 91
	KeyRightBracket Key = 93
	KeyEscape       Key = 256
)

// MouseButton is a mouse button; values match GLFW button codes.
type MouseButton int

const (
	MouseButtonLeft   MouseButton = 0
	MouseButtonRight  MouseButton = 1
	MouseButtonMiddle MouseButton = 2
)

// Action is a button transition; values match GLFW actions.
type Action int

const (
	Release Action = 0
	Press   Action = 1
)
