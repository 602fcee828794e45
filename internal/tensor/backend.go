package tensor

// Backend defines the interface that all compute backends must implement.
// Backends handle the actual computation for tensor operations.
//
// The op surface is the algebra regularization penalties are composed
// from: elementwise arithmetic, matrix multiply, transpose, scalar
// broadcast ops, and a full reduction.
type Backend interface {
	// Element-wise binary operations (with NumPy-style broadcasting)
	Add(a, b *RawTensor) *RawTensor
	Sub(a, b *RawTensor) *RawTensor
	Mul(a, b *RawTensor) *RawTensor

	// Matrix operations (2D only)
	MatMul(a, b *RawTensor) *RawTensor

	// Shape operations
	Reshape(t *RawTensor, newShape Shape) *RawTensor
	Transpose(t *RawTensor, axes ...int) *RawTensor

	// Scalar operations (element-wise with scalar)
	MulScalar(x *RawTensor, scalar any) *RawTensor
	AddScalar(x *RawTensor, scalar any) *RawTensor

	// Math operations (element-wise)
	Abs(x *RawTensor) *RawTensor    // absolute value
	Square(x *RawTensor) *RawTensor // x * x
	Sqrt(x *RawTensor) *RawTensor   // square root

	// Reduction operations
	Sum(x *RawTensor) *RawTensor // total sum (scalar result)

	// Metadata
	Name() string
	Device() Device
}
