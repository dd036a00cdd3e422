package parser

// BuildReceiptPrompt returns the extraction instruction for receipt images.
// The target schema is embedded verbatim so the model mirrors it; the output
// shape is still validated after generation, never assumed.
func BuildReceiptPrompt() string {
	return `You are an expert at extracting information from receipts.

Please extract the information from the receipt. Be as detailed as possible --
missing or misreporting information is a crime. Be sure to include Tips and
Payment Total. Duplicate items should be accounted for and listed separately.
If one of the fields in the JSON can not be found in the receipt, it should be
0 for any number type values and empty string for any string values. The
payment_method field must always be one of: "cash", "credit", "debit",
"check", "other".

Return the information in the following JSON schema:

{
  "store_name": "",
  "store_address": "",
  "items": [
    {"name": "", "price": 0}
  ],
  "tax": 0,
  "tips": 0,
  "total": 0,
  "payment_total": 0,
  "payment_method": "cash" | "credit" | "debit" | "check" | "other"
}`
}
