package mapping

import (
	"fmt"
	"os"
)

// SampleConfig is the annotated configuration written by init-config.
const SampleConfig = `# LookML builder configuration
# Custom classification rules and formatting preferences.

# Override automatic detection by listing field names.
# Names that are not fields of the view are ignored unless strict is true.
classification:
  # Fields that should NOT get filter dimensions
  exclude_from_filters:
    - internal_notes
    - raw_data

  # Fields that always get a sum measure
  force_as_measures:
    - transaction_count
    - avg_amount

  # Numeric fields that should be flags instead of measures
  force_as_flags:
    - status_code
    - priority_level

  # String fields that should be IDs instead of dimensions
  force_as_ids:
    - external_ref
    - tracking_number

  # Override primary key detection (optional)
  primary_key: transaction_id

  # Fail when an override names a field the view does not have
  strict: false

# Measures whose field name matches a pattern get the matching value_format.
formatting:
  # Currency ($#,##0.00)
  currency_patterns:
    - revenue
    - cost
    - earning
    - amount
    - price
    - fee
    - charge

  # Percentage (0.00%)
  percentage_patterns:
    - rate
    - percent
    - pct
    - ratio

  # Count (#,##0)
  count_patterns:
    - count
    - total
    - num
    - quantity
    - qty

# Joins written to the explore file.
ontology:
  project:
    name: sample_project
    governance_status: in_development
  relationships:
    - from: financial_transactions
      to: customers
      type: left_outer
      relationship: many_to_one
      via: ${financial_transactions.customer_id} = ${customers.id}
`

// WriteSample writes SampleConfig to path. An existing file is not replaced
// unless overwrite is set.
func WriteSample(path string, overwrite bool) error {
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !overwrite {
		flags |= os.O_EXCL
	}

	f, err := os.OpenFile(path, flags, filePerm)
	if err != nil {
		return fmt.Errorf("failed to create configuration file %s: %w", path, err)
	}

	if _, err := f.WriteString(SampleConfig); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write configuration file %s: %w", path, err)
	}

	return f.Close()
}
