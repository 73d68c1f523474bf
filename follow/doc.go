// Package follow walks a route node by node on behalf of a moving agent.
//
// A Follower holds the route most recently obtained from its Router and the
// index of the node the agent is heading for. Each Advance call reports the
// agent's position; once the agent is strictly closer than the arrival radius
// to its target, the target moves one node forward. It never moves past the
// last node of the route.
//
// Retarget requests a fresh route, replacing the current one. Watch does the
// same for every target received on a channel, which is how an agent reacts
// to "new target" notifications from the rest of the system.
//
// Steering, kinematics and collision avoidance are the caller's business:
// the Follower only says where to go next.
package follow
