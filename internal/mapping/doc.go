// Package mapping provides the YAML configuration schema, loading,
// validation, and the sample configuration for the LookML builder.
//
// YAML overrides turn best-effort automatic classification into
// deterministic regeneration.
//
// # Schema Overview
//
//	classification:
//	  primary_key: transaction_id     # explicit primary key
//	  force_as_ids: [external_ref]    # STRING fields to treat as IDs
//	  force_as_flags: [status_code]   # NUMBER fields to treat as flags
//	  force_as_measures: [avg_amount] # fields that always get a sum measure
//	  exclude_from_filters: [notes]   # fields that never get a filter
//	  strict: false                   # reject override names not in the view
//	formatting:
//	  currency_patterns: [revenue, cost]
//	  percentage_patterns: [rate, pct]
//	  count_patterns: [count, num]
//	ontology:
//	  project: {name: sales, governance_status: in_development}
//	  relationships:
//	    - from: orders
//	      to: customers
//	      type: left_outer
//	      relationship: many_to_one
//	      via: ${orders.customer_id} = ${customers.id}
//
// Any classification list may also be written as a single string.
// Missing formatting lists fall back to the built-in defaults; an explicit
// empty list disables that category.
//
// # Priority Order
//
// Overrides are applied in classification step order, so they may overlap:
//  1. primary_key
//  2. force_as_ids
//  3. force_as_flags
//  4. force_as_measures (bypasses the measure exclusions)
//  5. exclude_from_filters
//
// Names that are not fields of the view are ignored unless strict is set.
package mapping
