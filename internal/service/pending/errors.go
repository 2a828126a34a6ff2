package pending

import "errors"

var ErrCustomerNotFound = errors.New("customer not found")
