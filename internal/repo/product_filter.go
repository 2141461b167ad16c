package repo

// ProductFilter narrows catalog listings. Status takes the policy status
// strings ("in_stock", "low_stock", "out_of_stock"); empty means any.
type ProductFilter struct {
	Name     string
	Category string
	Supplier string
	Status   string
	Offset   *int
	Limit    *int
}
