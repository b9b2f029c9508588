package scene

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"orbitview/engine/camera"
	"orbitview/engine/game_object"
	"orbitview/engine/light"
	"orbitview/engine/model"
	"orbitview/engine/renderer"
	"orbitview/engine/renderer/bind_group_provider"
	"orbitview/engine/renderer/pipeline"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/cogentcore/webgpu/wgpu"
)

// instanceStride is the per-instance payload size in the GPU storage buffer
// (one ModelData = mat4x4<f32>).
const instanceStride = 64

// defaultMaxInstances sizes the instance storage buffer. One slot per game object.
const defaultMaxInstances = 256

// Scene manages a registry of GameObjects together with the orbit camera and
// point light that illuminate them. Per tick it advances object rotations and
// rebuilds the per-instance model matrices in parallel; per frame it uploads
// the camera, instance, and light GPU buffers before issuing draw calls.
// Scenes can be hot-swapped via the Active flag to switch between different views.
// Thread-safe for concurrent access.
type Scene interface {
	// Name returns the scene's identifier.
	Name() string

	// SetName sets the scene's identifier.
	SetName(name string)

	// Active returns whether this scene is currently active for rendering.
	Active() bool

	// SetActive sets whether this scene is active for rendering.
	SetActive(active bool)

	// Camera returns the scene's orbit camera.
	Camera() camera.OrbitCamera

	// SetCamera replaces the scene's orbit camera.
	//
	// Parameters:
	//   - cam: the new camera
	SetCamera(cam camera.OrbitCamera)

	// Light returns the scene's point light.
	Light() light.Light

	// SetLight replaces the scene's point light.
	//
	// Parameters:
	//   - l: the new light
	SetLight(l light.Light)

	// Renderer returns the scene's renderer, or nil when running headless.
	Renderer() renderer.Renderer

	// SetRenderer replaces the scene's renderer.
	//
	// Parameters:
	//   - r: the new renderer
	SetRenderer(r renderer.Renderer)

	// PipelineKey returns the key of the render pipeline this scene draws with.
	//
	// Returns:
	//   - string: the pipeline cache key
	PipelineKey() string

	// Count returns the number of GameObjects in the scene's registry.
	//
	// Returns:
	//   - int: count of registered GameObjects
	Count() int

	// Add adds a GameObject to the scene and assigns it an instance slot in the
	// GPU storage buffer. The object must carry a Model. When a renderer is
	// attached and GPU resources are initialized, the model's mesh buffers are
	// created on first use.
	//
	// Panics if the object has no Model or the instance capacity is exhausted.
	//
	// Parameters:
	//   - obj: the GameObject to add
	//
	// Returns:
	//   - uint64: the assigned object ID
	Add(obj game_object.GameObject) uint64

	// Get retrieves a GameObject by its ID.
	// Returns nil if not found.
	//
	// Parameters:
	//   - id: the object's unique ID
	//
	// Returns:
	//   - game_object.GameObject: the object or nil
	Get(id uint64) game_object.GameObject

	// Remove removes a GameObject from the registry by ID. The last object's
	// instance slot is swapped into the removed slot to keep slots dense.
	//
	// Parameters:
	//   - id: the object's unique ID
	Remove(id uint64)

	// Clear removes all objects from the scene.
	// Does not release GPU resources.
	Clear()

	// InitGPUResources registers the scene's render pipeline and initializes the
	// camera, instance, and light bind groups on the GPU, plus mesh buffers for
	// any already-registered objects. Requires an attached renderer.
	//
	// Returns:
	//   - error: an error if a GPU resource could not be created
	InitGPUResources() error

	// Advance progresses object rotations by the elapsed time and rebuilds the
	// per-instance model matrices. The matrix rebuild fans out across the
	// scene's worker pool with a per-frame barrier.
	//
	// Parameters:
	//   - deltaTime: elapsed time since the last tick in seconds
	Advance(deltaTime float32)

	// InstanceData returns the marshaled per-instance model matrices for the
	// currently registered objects, in slot order. The slice is reused across
	// frames; callers must not retain it.
	//
	// Returns:
	//   - []byte: Count()*64 bytes of instance data
	InstanceData() []byte

	// UploadFrameState writes the camera uniform, instance matrices, and light
	// uniform to the GPU in a single coalesced submission. Must be called after
	// all input events for the tick have been applied and strictly before
	// DrawCalls for the same frame.
	//
	// Returns:
	//   - error: an error if no renderer is attached
	UploadFrameState() error

	// DrawCalls issues one instanced draw call per enabled object within the
	// current render pass. Must be called within a BeginFrame/EndFrame block on
	// the renderer, after UploadFrameState.
	//
	// Returns:
	//   - error: error if a draw call fails
	DrawCalls() error
}

type scene struct {
	mu *sync.RWMutex

	name   string
	active bool

	objects  []game_object.GameObject // slot order matches instance buffer order
	registry map[uint64]int           // object ID -> slot index
	nextID   uint64

	cam    camera.OrbitCamera
	lgt    light.Light
	r      renderer.Renderer
	gpuUp  bool
	maxObj int

	pipelineKey string
	sceneBGP    bind_group_provider.BindGroupProvider

	cameraUniform camera.GPUCameraUniform
	lightUniform  light.GPULightUniform

	// Pre-allocated buffers reused each frame to avoid per-frame allocations.
	instanceData []byte
	writePool    []bind_group_provider.BufferWrite
	drawGroups   []bind_group_provider.BindGroupProvider

	// tickPool manages a bounded set of reusable goroutines for the parallel
	// instance matrix rebuild in Advance. Workers persist across frames,
	// avoiding per-frame goroutine spawn/teardown overhead.
	tickPool    worker.DynamicWorkerPool
	tickWorkers int
}

var _ Scene = &scene{}

// NewScene creates a new Scene with the given orbit camera. A renderer can be
// attached via WithRenderer (or SetRenderer later); CPU-side operations (Add,
// Advance, InstanceData) work without one, which keeps the scene testable
// headless. Call InitGPUResources once a renderer is attached.
//
// Parameters:
//   - name: the name of the scene
//   - cam: the orbit camera to attach (must not be nil)
//   - options: functional options to further configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(name string, cam camera.OrbitCamera, options ...SceneBuilderOption) Scene {
	if cam == nil {
		panic("scene: NewScene requires a non-nil camera")
	}

	s := &scene{
		mu:            &sync.RWMutex{},
		name:          name,
		cam:           cam,
		registry:      make(map[uint64]int),
		nextID:        1,
		maxObj:        defaultMaxInstances,
		pipelineKey:   name + "_lit",
		cameraUniform: camera.NewGPUCameraUniform(),
		tickWorkers:   max(runtime.NumCPU()-1, 1),
		drawGroups:    make([]bind_group_provider.BindGroupProvider, 0, 2),
	}

	for _, option := range options {
		option(s)
	}

	if s.lgt == nil {
		s.lgt = light.NewLight()
	}
	s.lightUniform.Update(s.lgt)
	s.instanceData = make([]byte, s.maxObj*instanceStride)

	// Initialize the tick pool after options so WithWorkers can override the default.
	// Queue size of 256 accommodates typical object counts with headroom.
	s.tickPool = worker.NewDynamicWorkerPool(s.tickWorkers, 256, 1*time.Second)

	return s
}

func (s *scene) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

func (s *scene) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
}

func (s *scene) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

func (s *scene) SetActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = active
}

func (s *scene) Camera() camera.OrbitCamera {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cam
}

func (s *scene) SetCamera(cam camera.OrbitCamera) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cam = cam
}

func (s *scene) Light() light.Light {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lgt
}

func (s *scene) SetLight(l light.Light) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lgt = l
}

func (s *scene) Renderer() renderer.Renderer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.r
}

func (s *scene) SetRenderer(r renderer.Renderer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.r = r
}

func (s *scene) PipelineKey() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pipelineKey
}

func (s *scene) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}

func (s *scene) Add(obj game_object.GameObject) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	mdl := obj.Model()
	if mdl == nil {
		panic("scene: cannot Add a GameObject without a Model")
	}
	if len(s.objects) >= s.maxObj {
		panic(fmt.Sprintf("scene %q: instance capacity %d exhausted", s.name, s.maxObj))
	}

	if obj.ID() == 0 {
		obj.SetID(atomic.AddUint64(&s.nextID, 1) - 1)
	}

	slot := len(s.objects)
	s.objects = append(s.objects, obj)
	s.registry[obj.ID()] = slot

	// Lazily create the model's GPU mesh buffers once a renderer is wired up.
	if s.gpuUp {
		if err := s.initMeshLocked(mdl); err != nil {
			panic(fmt.Sprintf("scene: failed to init mesh buffers for model %q: %v", mdl.Name(), err))
		}
	}

	return obj.ID()
}

func (s *scene) Get(id uint64) game_object.GameObject {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if slot, ok := s.registry[id]; ok {
		return s.objects[slot]
	}
	return nil
}

func (s *scene) Remove(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	slot, ok := s.registry[id]
	if !ok {
		return
	}
	delete(s.registry, id)

	last := len(s.objects) - 1
	if slot != last {
		// Swap the last object into the freed slot to keep slots dense.
		moved := s.objects[last]
		s.objects[slot] = moved
		s.registry[moved.ID()] = slot
	}
	s.objects = s.objects[:last]
}

func (s *scene) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects = nil
	s.registry = make(map[uint64]int)
}

func (s *scene) InitGPUResources() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.r == nil {
		return fmt.Errorf("scene %q has no renderer attached", s.name)
	}

	sceneDesc := s.sceneBindGroupLayoutDescriptor()

	p := pipeline.NewPipeline(s.pipelineKey,
		pipeline.WithShaderSource(ShaderSource()),
		pipeline.WithVertexLayouts(model.VertexBufferLayout()),
		pipeline.WithBindGroupLayoutDescriptors(cameraBindGroupLayoutDescriptor(), sceneDesc),
		pipeline.WithCullMode(wgpu.CullModeBack),
	)
	if err := s.r.RegisterPipelines(p); err != nil {
		return fmt.Errorf("scene %q: failed to register render pipeline: %w", s.name, err)
	}

	// Camera uniform lives on the camera's own provider (group 0).
	if bgp := s.cam.BindGroupProvider(); bgp != nil {
		if err := s.r.InitBindGroup(bgp, cameraBindGroupLayoutDescriptor(), nil, nil); err != nil {
			return fmt.Errorf("scene %q: failed to init camera bind group: %w", s.name, err)
		}
	}

	// Instance storage + light uniform share one provider (group 1). The
	// storage buffer is sized for the full instance capacity up front.
	bgp := bind_group_provider.NewBindGroupProvider(s.name + "_scene_data")
	sizeOverrides := map[int]uint64{
		0: uint64(s.maxObj) * instanceStride,
	}
	if err := s.r.InitBindGroup(bgp, sceneDesc, nil, sizeOverrides); err != nil {
		return fmt.Errorf("scene %q: failed to init scene bind group: %w", s.name, err)
	}
	s.sceneBGP = bgp

	// Mesh buffers for objects registered before GPU init.
	for _, obj := range s.objects {
		if mdl := obj.Model(); mdl != nil {
			if err := s.initMeshLocked(mdl); err != nil {
				return fmt.Errorf("scene %q: failed to init mesh buffers for model %q: %w", s.name, mdl.Name(), err)
			}
		}
	}

	s.gpuUp = true
	return nil
}

// initMeshLocked creates the model's vertex/index buffers if they do not exist
// yet, attaching a fresh provider when the model has none. Caller must hold s.mu.
func (s *scene) initMeshLocked(mdl model.Model) error {
	meshBGP := mdl.MeshProvider()
	if meshBGP == nil {
		meshBGP = bind_group_provider.NewBindGroupProvider(mdl.Name() + "_mesh")
		mdl.SetMeshProvider(meshBGP)
	}
	if meshBGP.VertexBuffer() != nil {
		return nil
	}
	return s.r.InitMeshBuffers(meshBGP, mdl.VertexData(), mdl.IndexData(), mdl.IndexCount())
}

func (s *scene) Advance(deltaTime float32) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Fan the per-object work out across the tick pool. Workers are reused
	// across frames; a WaitGroup provides the per-frame barrier since
	// pool.Wait() blocks until workers idle-exit, which is unsuitable for
	// frame-rate workloads. Each task writes a disjoint 64-byte region of
	// instanceData, so no write synchronization is needed.
	var wg sync.WaitGroup
	for i, obj := range s.objects {
		wg.Add(1)
		o, slot := obj, i
		s.tickPool.SubmitTask(worker.Task{
			ID: slot,
			Do: func() (any, error) {
				defer wg.Done()
				o.Advance(deltaTime)
				data := model.GPUModelData{Model: [16]float32(o.ModelMatrix())}
				copy(s.instanceData[slot*instanceStride:(slot+1)*instanceStride], data.Marshal())
				return nil, nil
			},
		})
	}
	wg.Wait()
}

func (s *scene) InstanceData() []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.instanceData[:len(s.objects)*instanceStride]
}

func (s *scene) UploadFrameState() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.r == nil {
		return fmt.Errorf("scene %q has no renderer attached", s.name)
	}

	// Snapshot camera and light state into the CPU-side uniforms, then submit
	// all writes in one batch. Input events applied after this point take
	// effect next frame.
	s.cameraUniform.UpdateViewProj(s.cam)
	s.lightUniform.Update(s.lgt)

	writes := s.writePool[:0]
	if bgp := s.cam.BindGroupProvider(); bgp != nil {
		writes = append(writes, bind_group_provider.BufferWrite{
			Provider: bgp,
			Binding:  0,
			Offset:   0,
			Data:     s.cameraUniform.Marshal(),
		})
	}
	if s.sceneBGP != nil {
		if count := len(s.objects); count > 0 {
			writes = append(writes, bind_group_provider.BufferWrite{
				Provider: s.sceneBGP,
				Binding:  0,
				Offset:   0,
				Data:     s.instanceData[:count*instanceStride],
			})
		}
		writes = append(writes, bind_group_provider.BufferWrite{
			Provider: s.sceneBGP,
			Binding:  1,
			Offset:   0,
			Data:     s.lightUniform.Marshal(),
		})
	}
	s.writePool = writes

	if len(writes) > 0 {
		s.r.WriteBuffers(writes)
	}
	return nil
}

func (s *scene) DrawCalls() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.r == nil {
		return fmt.Errorf("scene %q has no renderer attached", s.name)
	}

	groups := s.drawGroups[:0]
	groups = append(groups, s.cam.BindGroupProvider(), s.sceneBGP)

	for slot, obj := range s.objects {
		if !obj.Enabled() {
			continue
		}
		mdl := obj.Model()
		if mdl == nil {
			continue
		}
		meshProvider := mdl.MeshProvider()
		if meshProvider == nil {
			continue
		}
		// firstInstance selects the object's slot in the instance storage
		// buffer via @builtin(instance_index) in the vertex shader.
		if err := s.r.DrawCall(s.pipelineKey, meshProvider, 1, uint32(slot), groups); err != nil {
			return err
		}
	}
	return nil
}
