package fixed

// Plain integer variants with zero fractional bits, usable wherever the
// geometry types are instantiated with a Value.

type Int16 int16
type Point16 = Point[Int16]
type Rectangle16 = Rectangle[Int16]

func (x Int16) Mul(y Int16) Int16 { return x * y }
func (x Int16) Div(y Int16) Int16 { return x / y }

type Int32 int32
type Point32 = Point[Int32]
type Rectangle32 = Rectangle[Int32]

func (x Int32) Mul(y Int32) Int32 { return x * y }
func (x Int32) Div(y Int32) Int32 { return x / y }

type Int64 int64
type Point64 = Point[Int64]
type Rectangle64 = Rectangle[Int64]

func (x Int64) Mul(y Int64) Int64 { return x * y }
func (x Int64) Div(y Int64) Int64 { return x / y }
