package repository

const selectService = `
SELECT
	id,
	name,
	description,
	creation_date,
	price_main,
	discount_value,
	discount_expiry,
	status,
	stock,
	sell_deadline,
	requires_offer_acceptance,
	created_at,
	updated_at
FROM services`

const selectPayment = `
SELECT
	id,
	status,
	buyer_id,
	snapshot,
	commission_key,
	tax_receipt_id,
	received_amount,
	payer_amount,
	created_at,
	updated_at
FROM payments`
