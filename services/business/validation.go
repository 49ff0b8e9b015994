package business

import "fmt"

// ValidateAccountNumber checks a US bank account number: 6 to 17 digits.
func ValidateAccountNumber(n string) error {
	if len(n) < 6 || len(n) > 17 {
		return fmt.Errorf("account number must be 6 to 17 digits")
	}
	for _, r := range n {
		if r < '0' || r > '9' {
			return fmt.Errorf("account number must contain only digits")
		}
	}
	return nil
}

// ValidateRoutingNumber checks a 9-digit ABA routing number, including its
// checksum: 3*(d1+d4+d7) + 7*(d2+d5+d8) + (d3+d6+d9) must be divisible by 10.
func ValidateRoutingNumber(n string) error {
	if len(n) != 9 {
		return fmt.Errorf("routing number must be exactly 9 digits")
	}
	digits := make([]int, 9)
	for i, r := range n {
		if r < '0' || r > '9' {
			return fmt.Errorf("routing number must contain only digits")
		}
		digits[i] = int(r - '0')
	}

	sum := 3*(digits[0]+digits[3]+digits[6]) +
		7*(digits[1]+digits[4]+digits[7]) +
		(digits[2] + digits[5] + digits[8])
	if sum%10 != 0 {
		return fmt.Errorf("routing number failed checksum")
	}
	return nil
}
