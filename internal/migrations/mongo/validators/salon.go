package validators

import "go.mongodb.org/mongo-driver/bson"

var SalonValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"name",
			"approval_state",
			"created_at",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "objectId",
			},

			"name": bson.M{
				"bsonType":  "string",
				"minLength": 2,
				"maxLength": 100,
			},

			"district": bson.M{
				"bsonType":  "string",
				"maxLength": 100,
			},

			"approval_state": bson.M{
				"bsonType": "string",
				"enum": []string{
					"pending",
					"approved",
					"rejected",
				},
			},

			"created_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}
