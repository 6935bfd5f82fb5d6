package validators

import "go.mongodb.org/mongo-driver/bson"

var AppointmentValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"salon_id",
			"services",
			"date",
			"start_time",
			"end_time",
			"status",
			"created_at",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "objectId",
			},

			"salon_id": bson.M{
				"bsonType":  "string",
				"minLength": 24,
				"maxLength": 24,
			},

			"professional_id": bson.M{
				"bsonType":  "string",
				"minLength": 24,
				"maxLength": 24,
			},

			"services": bson.M{
				"bsonType": "array",
				"minItems": 1,
				"items": bson.M{
					"bsonType": "object",
					"required": []string{"name"},
					"properties": bson.M{
						"name": bson.M{
							"bsonType":  "string",
							"minLength": 1,
							"maxLength": 100,
						},
						"price": bson.M{
							"bsonType": "int",
							"minimum":  0,
						},
						"duration": bson.M{
							"bsonType":  "string",
							"maxLength": 50,
						},
					},
				},
			},

			"customer_name": bson.M{
				"bsonType":  "string",
				"maxLength": 100,
			},

			"email": bson.M{
				"bsonType":  "string",
				"maxLength": 254,
			},

			"phone": bson.M{
				"bsonType":  "string",
				"maxLength": 20,
			},

			"date": bson.M{
				"bsonType": "string",
				"pattern":  "^\\d{4}-\\d{2}-\\d{2}$",
			},

			"start_time": bson.M{
				"bsonType": "string",
				"pattern":  "^\\d{2}:\\d{2}$",
			},

			"end_time": bson.M{
				"bsonType": "string",
				"pattern":  "^\\d{2}:\\d{2}$",
			},

			"status": bson.M{
				"bsonType": "string",
				"enum": []string{
					"pending",
					"confirmed",
					"completed",
					"cancelled",
				},
			},

			"booking_group_id": bson.M{
				"bsonType":  "string",
				"maxLength": 64,
			},

			"is_rescheduled": bson.M{
				"bsonType": "bool",
			},

			"original_appointment_id": bson.M{
				"bsonType":  "string",
				"maxLength": 24,
			},

			"member_info": bson.M{
				"bsonType": "object",
				"properties": bson.M{
					"name": bson.M{
						"bsonType":  "string",
						"maxLength": 100,
					},
					"category": bson.M{
						"bsonType":  "string",
						"maxLength": 50,
					},
				},
			},

			"created_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}
