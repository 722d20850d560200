package enums

// PaymentStatus is the stamp a document view prints for the order's payment
// position. Receipt views always stamp PaidInFull by workflow convention.
type PaymentStatus string

const (
	PaymentStatusUnpaid     PaymentStatus = "UNPAID"
	PaymentStatusPartial    PaymentStatus = "PARTIAL"
	PaymentStatusPaid       PaymentStatus = "PAID"
	PaymentStatusPaidInFull PaymentStatus = "PAID IN FULL"
)

// String implements fmt.Stringer.
func (p PaymentStatus) String() string {
	return string(p)
}
