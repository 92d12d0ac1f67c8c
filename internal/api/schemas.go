package api

const paymentInstructionSchema = `{
  "type": "object",
  "additionalProperties": false,
  "required": ["accounts", "instruction"],
  "properties": {
    "instruction": {"type": "string", "minLength": 1},
    "accounts": {
      "type": "array",
      "items": {
        "type": "object",
        "additionalProperties": false,
        "required": ["id", "balance", "currency"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "balance": {"type": "integer"},
          "currency": {"type": "string", "pattern": "^[A-Z]{3}$"}
        }
      }
    }
  }
}`
